package types

// Port is the canonical catalog entity. Native ports decode straight into
// it; userstyles are adapted into it by the core.
type Port struct {
	Name               string         `yaml:"name" json:"name"`
	Categories         []string       `yaml:"categories" json:"categories"`
	Upstreamed         *bool          `yaml:"upstreamed,omitempty" json:"upstreamed,omitempty"`
	Platform           OneOrMany      `yaml:"platform" json:"platform"`
	URL                string         `yaml:"url,omitempty" json:"url,omitempty"`
	Links              []Link         `yaml:"links,omitempty" json:"links,omitempty"`
	Icon               string         `yaml:"icon,omitempty" json:"icon,omitempty"`
	Color              string         `yaml:"color" json:"color"`
	Alias              string         `yaml:"alias,omitempty" json:"alias,omitempty"`
	CurrentMaintainers []Collaborator `yaml:"current-maintainers" json:"current-maintainers"`
	PastMaintainers    []Collaborator `yaml:"past-maintainers,omitempty" json:"past-maintainers,omitempty"`
	IsUserstyle        bool           `yaml:"is-userstyle,omitempty" json:"is-userstyle"`
}

type Link struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
	URL   string `yaml:"url" json:"url"`
}
