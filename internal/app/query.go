package app

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"catppuccin-api/internal/policies"
	"catppuccin-api/internal/types"
)

// QueryService answers read queries over a Catalog, shaping results by its
// presentation.
type QueryService struct {
	catalog *Catalog
	policy  policies.PresentationPolicy
}

// NewQueryService binds a presentation to catalog. An empty presentation
// selects single-or-multiple.
func NewQueryService(catalog *Catalog, presentation types.Presentation) (QueryService, error) {
	if catalog == nil {
		return QueryService{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("catalog is not built")
	}
	policy, err := policies.NewPresentationPolicy(presentation)
	if err != nil {
		return QueryService{}, err
	}
	return QueryService{catalog: catalog, policy: policy}, nil
}

func (q QueryService) Presentation() types.Presentation {
	return q.policy.Presentation
}

// FoldsCase reports whether FindPort ignores case under this presentation.
func (q QueryService) FoldsCase() bool {
	return q.policy.FoldsCase()
}

func (q QueryService) ListPorts() PortListing {
	listing := PortListing{Presentation: q.policy.Presentation}
	if !q.policy.GroupsByIdentifier() {
		listing.Flat = q.catalog.index.Entries()
		return listing
	}
	listing.Grouped = q.catalog.index.Grouped()
	return listing
}

// FindPort looks up identifier with the presentation's default matching,
// or with match ("exact" or "folded") when it is set.
func (q QueryService) FindPort(identifier string, match string) (PortLookup, error) {
	caseSensitive, err := q.policy.CaseSensitive(match)
	if err != nil {
		return PortLookup{}, err
	}
	return q.GetPort(identifier, caseSensitive)
}

// GetPort collects every port whose identifier matches. Without
// caseSensitive both sides are lowercased before comparing.
func (q QueryService) GetPort(identifier string, caseSensitive bool) (PortLookup, error) {
	lookup := newPortLookup(q.catalog.index.FindPorts(identifier, !caseSensitive))
	if lookup.Kind == LookupNotFound {
		return lookup, notFound(fmt.Sprintf("No port with identifier %s", identifier))
	}
	return lookup, nil
}

func (q QueryService) ListCollaborators() CollaboratorListing {
	listing := CollaboratorListing{Presentation: q.policy.Presentation}
	if !q.policy.GroupsByIdentifier() {
		listing.Flat = q.catalog.index.Collaborators()
		return listing
	}
	listing.ByUsername = q.catalog.index.CollaboratorsByUsername()
	return listing
}

// GetCollaborator matches username exactly.
func (q QueryService) GetCollaborator(username string) (types.Collaborator, error) {
	collaborator, ok := q.catalog.index.Collaborator(username)
	if !ok {
		return types.Collaborator{}, notFound(fmt.Sprintf("No collaborator with username %s", username))
	}
	return collaborator, nil
}

// ListCategories returns key -> category.
func (q QueryService) ListCategories() map[string]types.Category {
	categories := q.catalog.index.Categories()
	out := make(map[string]types.Category, len(categories))
	for _, category := range categories {
		out[category.Key] = category
	}
	return out
}

func (q QueryService) GetCategory(key string) (types.Category, error) {
	category, ok := q.catalog.index.Category(key)
	if !ok {
		return types.Category{}, notFound(fmt.Sprintf("No category with key %s", key))
	}
	return category, nil
}

func (q QueryService) ListShowcases() []types.Showcase {
	return q.catalog.Showcases()
}

func (q QueryService) CategoryUsage() []types.CategoryUsage {
	return q.catalog.index.CategoryUsage()
}

func (q QueryService) Summary() types.CatalogSummary {
	return q.catalog.Summary()
}

func notFound(message string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(message)
}
