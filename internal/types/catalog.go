package types

// MergedPort pairs a port with the identifier it was listed under in its
// source document.
type MergedPort struct {
	Identifier string
	Port       Port
}

// MergeResult is the merge engine output: native ports followed by adapted
// userstyles, and the concatenated collaborator lists before dedup.
type MergeResult struct {
	Ports         []MergedPort
	Collaborators []Collaborator
}

// CatalogEntry is a port as served: tagged with its identifier and with its
// category keys resolved to Category values.
type CatalogEntry struct {
	Identifier string `json:"identifier"`
	Port
	Categories []Category `json:"categories"`
}

// CategoryKeys returns the unresolved keys the entry was built from.
func (e CatalogEntry) CategoryKeys() []string {
	return e.Port.Categories
}

type CatalogSummary struct {
	Ports         int `json:"ports"`
	NativePorts   int `json:"native-ports"`
	Userstyles    int `json:"userstyles"`
	Identifiers   int `json:"identifiers"`
	Collaborators int `json:"collaborators"`
	Categories    int `json:"categories"`
	Showcases     int `json:"showcases"`
}

// CategoryUsage is how many distinct identifiers list a category.
type CategoryUsage struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
