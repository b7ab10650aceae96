package core

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/shared"
	"catppuccin-api/internal/types"
)

// LookupIndex holds the derived mappings over a merged catalog. It is built
// once and never mutated afterwards, so concurrent readers need no locking.
type LookupIndex struct {
	entries       []types.CatalogEntry
	identifiers   []string
	byIdentifier  map[string][]types.CatalogEntry
	usernames     []string
	collaborators map[string]types.Collaborator
	categories    []types.Category
	byCategory    map[string]types.Category
}

// NewLookupIndex builds the index. Entries keep their merge order; stored
// identifiers keep their original case. On a username collision the later
// collaborator replaces the earlier one.
func NewLookupIndex(ctx context.Context, entries []types.CatalogEntry, collaborators []types.Collaborator, categories []types.Category) (*LookupIndex, error) {
	byCategory, err := CategoryTable(categories)
	if err != nil {
		return nil, err
	}

	idx := &LookupIndex{
		entries:       slices.Clone(entries),
		byIdentifier:  make(map[string][]types.CatalogEntry),
		collaborators: make(map[string]types.Collaborator, len(collaborators)),
		categories:    slices.Clone(categories),
		byCategory:    byCategory,
	}
	for _, entry := range entries {
		if _, seen := idx.byIdentifier[entry.Identifier]; !seen {
			idx.identifiers = append(idx.identifiers, entry.Identifier)
		}
		idx.byIdentifier[entry.Identifier] = append(idx.byIdentifier[entry.Identifier], entry)
	}
	for _, collaborator := range collaborators {
		username, err := Username(collaborator)
		if err != nil {
			return nil, err
		}
		if _, exists := idx.collaborators[username]; exists {
			log.Ctx(ctx).Debug().Str("username", username).Msg("collaborator replaced by later record")
		} else {
			idx.usernames = append(idx.usernames, username)
		}
		idx.collaborators[username] = collaborator
	}

	log.Ctx(ctx).Debug().
		Int("entries", len(idx.entries)).
		Int("identifiers", len(idx.identifiers)).
		Int("collaborators", len(idx.usernames)).
		Int("categories", len(idx.categories)).
		Msg("lookup index built")
	return idx, nil
}

// Entries returns every port in merge order.
func (i *LookupIndex) Entries() []types.CatalogEntry {
	return slices.Clone(i.entries)
}

// Identifiers returns the distinct identifiers in first-seen order.
func (i *LookupIndex) Identifiers() []string {
	return slices.Clone(i.identifiers)
}

// Grouped returns identifier -> ports sharing it, each group in merge order.
func (i *LookupIndex) Grouped() map[string][]types.CatalogEntry {
	out := make(map[string][]types.CatalogEntry, len(i.byIdentifier))
	for id, group := range i.byIdentifier {
		out[id] = slices.Clone(group)
	}
	return out
}

// FindPorts returns every port whose identifier matches. With foldCase the
// query and stored identifiers are both lowercased before comparing.
func (i *LookupIndex) FindPorts(identifier string, foldCase bool) []types.CatalogEntry {
	if !foldCase {
		return slices.Clone(i.byIdentifier[identifier])
	}
	query := shared.FoldKey(identifier)
	var matches []types.CatalogEntry
	for _, entry := range i.entries {
		if shared.FoldKey(entry.Identifier) == query {
			matches = append(matches, entry)
		}
	}
	return matches
}

func (i *LookupIndex) Collaborator(username string) (types.Collaborator, bool) {
	collaborator, ok := i.collaborators[username]
	return collaborator, ok
}

// Collaborators returns one collaborator per username, ordered by first
// appearance.
func (i *LookupIndex) Collaborators() []types.Collaborator {
	out := make([]types.Collaborator, 0, len(i.usernames))
	for _, username := range i.usernames {
		out = append(out, i.collaborators[username])
	}
	return out
}

func (i *LookupIndex) CollaboratorsByUsername() map[string]types.Collaborator {
	out := make(map[string]types.Collaborator, len(i.collaborators))
	for username, collaborator := range i.collaborators {
		out[username] = collaborator
	}
	return out
}

func (i *LookupIndex) Category(key string) (types.Category, bool) {
	category, ok := i.byCategory[key]
	return category, ok
}

// Categories returns the categories in document order.
func (i *LookupIndex) Categories() []types.Category {
	return slices.Clone(i.categories)
}

// CategoryUsage counts identifiers per category, most used first. An
// identifier counts once even when several of its ports share the category.
// Ties keep document order.
func (i *LookupIndex) CategoryUsage() []types.CategoryUsage {
	counts := make(map[string]int, len(i.categories))
	for _, identifier := range i.identifiers {
		seen := map[string]struct{}{}
		for _, entry := range i.byIdentifier[identifier] {
			for _, key := range entry.CategoryKeys() {
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				counts[key]++
			}
		}
	}
	usage := make([]types.CategoryUsage, 0, len(i.categories))
	for _, category := range i.categories {
		usage = append(usage, types.CategoryUsage{Key: category.Key, Name: category.Name, Count: counts[category.Key]})
	}
	slices.SortStableFunc(usage, func(a, b types.CategoryUsage) int {
		return b.Count - a.Count
	})
	return usage
}
