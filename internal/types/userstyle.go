package types

// Userstyle is the shape of an entry in the userstyles document. It is never
// served directly; the core adapts it into a Port.
type Userstyle struct {
	Name               OneOrMany      `yaml:"name"`
	Categories         []string       `yaml:"categories"`
	Icon               string         `yaml:"icon,omitempty"`
	Color              string         `yaml:"color"`
	Readme             Readme         `yaml:"readme"`
	CurrentMaintainers []Collaborator `yaml:"current-maintainers"`
	PastMaintainers    []Collaborator `yaml:"past-maintainers,omitempty"`
}

type Readme struct {
	AppLink OneOrMany `yaml:"app-link"`
}
