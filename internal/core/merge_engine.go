package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/types"
)

type MergeEngine struct{}

func NewMergeEngine() MergeEngine {
	return MergeEngine{}
}

// Merge concatenates native ports and adapted userstyles, native first, each
// side in document order. Collaborators are concatenated the same way and
// left for the lookup index to dedup. Ports are never dropped here even when
// identifiers repeat across the two documents.
func (m MergeEngine) Merge(ctx context.Context, portsDoc types.PortsDocument, userstylesDoc types.UserstylesDocument) (types.MergeResult, error) {
	merged := make([]types.MergedPort, 0, len(portsDoc.Ports)+len(userstylesDoc.Userstyles))
	for _, entry := range portsDoc.Ports {
		assert.NotEmpty(ctx, entry.Identifier, "port identifier must be set")
		merged = append(merged, types.MergedPort{Identifier: entry.Identifier, Port: entry.Value})
	}
	for _, entry := range userstylesDoc.Userstyles {
		assert.NotEmpty(ctx, entry.Identifier, "userstyle identifier must be set")
		port, err := AdaptUserstyle(entry.Identifier, entry.Value)
		if err != nil {
			return types.MergeResult{}, err
		}
		merged = append(merged, types.MergedPort{Identifier: entry.Identifier, Port: port})
	}

	collaborators := make([]types.Collaborator, 0, len(portsDoc.Collaborators)+len(userstylesDoc.Collaborators))
	collaborators = append(collaborators, portsDoc.Collaborators...)
	collaborators = append(collaborators, userstylesDoc.Collaborators...)

	log.Ctx(ctx).Debug().
		Int("ports", len(portsDoc.Ports)).
		Int("userstyles", len(userstylesDoc.Userstyles)).
		Int("collaborators", len(collaborators)).
		Msg("source documents merged")
	return types.MergeResult{Ports: merged, Collaborators: collaborators}, nil
}

// Enrich resolves every category key of every merged port. A key missing
// from the category table means the two documents disagree, so the whole
// build fails instead of serving a port with a partial category list.
func (m MergeEngine) Enrich(ctx context.Context, merged []types.MergedPort, categories []types.Category) ([]types.CatalogEntry, error) {
	table, err := CategoryTable(categories)
	if err != nil {
		return nil, err
	}
	entries := make([]types.CatalogEntry, 0, len(merged))
	for _, item := range merged {
		resolved := make([]types.Category, 0, len(item.Port.Categories))
		for _, key := range item.Port.Categories {
			category, ok := table[key]
			if !ok {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("port %s references unknown category %s", item.Identifier, key))
			}
			resolved = append(resolved, category)
		}
		entries = append(entries, types.CatalogEntry{
			Identifier: item.Identifier,
			Port:       item.Port,
			Categories: resolved,
		})
	}
	log.Ctx(ctx).Debug().Int("entries", len(entries)).Int("categories", len(table)).Msg("ports enriched")
	return entries, nil
}

// CategoryTable indexes categories by key, rejecting empty and repeated keys.
func CategoryTable(categories []types.Category) (map[string]types.Category, error) {
	table := make(map[string]types.Category, len(categories))
	for _, category := range categories {
		if category.Key == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("category %q has an empty key", category.Name))
		}
		if _, dup := table[category.Key]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("duplicate category key: %s", category.Key))
		}
		table[category.Key] = category
	}
	return table, nil
}
