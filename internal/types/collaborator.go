package types

// Collaborator is a person credited on ports and userstyles. URL is a
// GitHub profile URL; the username derived from it is the lookup key.
type Collaborator struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	URL  string `yaml:"url" json:"url"`
}
