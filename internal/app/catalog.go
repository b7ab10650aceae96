package app

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/core"
	"catppuccin-api/internal/ports"
	"catppuccin-api/internal/types"
)

type BuildOptions struct {
	// SkipValidation bypasses the document validator. Merge and enrichment
	// still fail on integrity faults.
	SkipValidation bool
}

// Catalog is the merged, indexed dataset. It is built once by BuildCatalog
// and read-only afterwards; every QueryService shares it without locking.
type Catalog struct {
	index     *core.LookupIndex
	showcases []types.Showcase
	summary   types.CatalogSummary
}

// BuildCatalog loads both source documents and builds the catalog. Any
// fault here is a startup fault: the caller must not serve a partial
// catalog.
func BuildCatalog(ctx context.Context, source ports.SourceDocumentPort, opts BuildOptions) (*Catalog, error) {
	portsDoc, err := source.LoadPorts(ctx)
	if err != nil {
		return nil, err
	}
	userstylesDoc, err := source.LoadUserstyles(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCatalogFromDocuments(ctx, portsDoc, userstylesDoc, opts)
}

// BuildCatalogFromDocuments builds the catalog from already parsed
// documents.
func BuildCatalogFromDocuments(ctx context.Context, portsDoc types.PortsDocument, userstylesDoc types.UserstylesDocument, opts BuildOptions) (*Catalog, error) {
	if !opts.SkipValidation {
		validator := core.NewDocumentValidator()
		if err := validator.ValidatePorts(ctx, portsDoc); err != nil {
			return nil, err
		}
		if err := validator.ValidateUserstyles(ctx, userstylesDoc); err != nil {
			return nil, err
		}
	}

	engine := core.NewMergeEngine()
	merged, err := engine.Merge(ctx, portsDoc, userstylesDoc)
	if err != nil {
		return nil, err
	}
	entries, err := engine.Enrich(ctx, merged.Ports, portsDoc.Categories)
	if err != nil {
		return nil, err
	}
	index, err := core.NewLookupIndex(ctx, entries, merged.Collaborators, portsDoc.Categories)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{
		index:     index,
		showcases: slices.Clone(portsDoc.Showcases),
		summary: types.CatalogSummary{
			Ports:         len(entries),
			NativePorts:   len(portsDoc.Ports),
			Userstyles:    len(userstylesDoc.Userstyles),
			Identifiers:   len(index.Identifiers()),
			Collaborators: len(index.Collaborators()),
			Categories:    len(portsDoc.Categories),
			Showcases:     len(portsDoc.Showcases),
		},
	}
	log.Ctx(ctx).Info().
		Int("ports", catalog.summary.Ports).
		Int("collaborators", catalog.summary.Collaborators).
		Int("categories", catalog.summary.Categories).
		Msg("catalog built")
	return catalog, nil
}

func (c *Catalog) Index() *core.LookupIndex {
	return c.index
}

func (c *Catalog) Showcases() []types.Showcase {
	return slices.Clone(c.showcases)
}

func (c *Catalog) Summary() types.CatalogSummary {
	return c.summary
}
