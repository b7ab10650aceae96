package types

// Category groups ports. Key is the stable identifier ports refer to and is
// never rendered in response bodies.
type Category struct {
	Key         string `yaml:"key" json:"-"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Emoji       string `yaml:"emoji" json:"emoji"`
}
