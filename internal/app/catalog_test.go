package app

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"catppuccin-api/internal/adapters"
	"catppuccin-api/internal/types"
)

func fixtureService(t *testing.T) Service {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	fetcher := adapters.NewLocationFetcherAdapter(map[types.SourceKind]string{
		types.SourceKindPorts:      filepath.Join(root, "fixtures", "ports.yml"),
		types.SourceKindUserstyles: filepath.Join(root, "fixtures", "userstyles.yml"),
	}, 0, 0, 0)
	return NewServiceWithFetcher(fetcher)
}

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := BuildCatalog(t.Context(), fixtureService(t).Source, BuildOptions{})
	require.NoError(t, err)
	return catalog
}

func TestBuildCatalogFromFixtures(t *testing.T) {
	catalog := fixtureCatalog(t)
	want := types.CatalogSummary{
		Ports:         5,
		NativePorts:   3,
		Userstyles:    2,
		Identifiers:   5,
		Collaborators: 4,
		Categories:    4,
		Showcases:     1,
	}
	if diff := cmp.Diff(want, catalog.Summary()); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}

	var identifiers []string
	for _, entry := range catalog.Index().Entries() {
		identifiers = append(identifiers, entry.Identifier)
	}
	if diff := cmp.Diff([]string{"alacritty", "neovim", "GitHub", "github", "discord"}, identifiers); diff != "" {
		t.Fatalf("unexpected merge order (-want +got):\n%s", diff)
	}
}

func TestBuildCatalogSingleNativePort(t *testing.T) {
	portsDoc := types.PortsDocument{
		Ports: types.Entries[types.Port]{{
			Identifier: "alacritty",
			Value: types.Port{
				Name:       "Alacritty",
				Categories: []string{"term"},
				Platform:   types.Multiple("linux", "macos"),
				Color:      "#fff",
			},
		}},
		Categories: []types.Category{{Key: "term", Name: "Terminal", Description: "Terminals", Emoji: "💻"}},
	}
	catalog, err := BuildCatalogFromDocuments(t.Context(), portsDoc, types.UserstylesDocument{}, BuildOptions{})
	require.NoError(t, err)

	query, err := NewQueryService(catalog, types.PresentationFlat)
	require.NoError(t, err)
	listing := query.ListPorts()
	require.Len(t, listing.Flat, 1)
	port := listing.Flat[0]
	require.Equal(t, "Alacritty", port.Name)
	require.False(t, port.IsUserstyle)
	if diff := cmp.Diff([]types.Category{{Key: "term", Name: "Terminal", Description: "Terminals", Emoji: "💻"}}, port.Categories); diff != "" {
		t.Fatalf("unexpected categories (-want +got):\n%s", diff)
	}
}

func TestBuildCatalogStartupFaults(t *testing.T) {
	goodCategories := []types.Category{{Key: "term", Name: "Terminal"}}
	port := func(categories ...string) types.Entries[types.Port] {
		return types.Entries[types.Port]{{
			Identifier: "kitty",
			Value:      types.Port{Name: "kitty", Categories: categories, Platform: types.Single("linux"), Color: "red"},
		}}
	}
	tests := []struct {
		name       string
		portsDoc   types.PortsDocument
		userstyles types.UserstylesDocument
		opts       BuildOptions
	}{
		{
			name:     "unknown category",
			portsDoc: types.PortsDocument{Ports: port("missing"), Categories: goodCategories},
		},
		{
			name:     "unknown category without validation",
			portsDoc: types.PortsDocument{Ports: port("missing"), Categories: goodCategories},
			opts:     BuildOptions{SkipValidation: true},
		},
		{
			name: "foreign collaborator url",
			portsDoc: types.PortsDocument{
				Ports:         port("term"),
				Categories:    goodCategories,
				Collaborators: []types.Collaborator{{URL: "https://gitlab.com/alice"}},
			},
			opts: BuildOptions{SkipValidation: true},
		},
		{
			name:     "userstyle without app link",
			portsDoc: types.PortsDocument{Ports: port("term"), Categories: goodCategories},
			userstyles: types.UserstylesDocument{Userstyles: types.Entries[types.Userstyle]{{
				Identifier: "empty",
				Value:      types.Userstyle{Name: types.Single("Empty"), Readme: types.Readme{AppLink: types.Multiple()}},
			}}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := BuildCatalogFromDocuments(t.Context(), tt.portsDoc, tt.userstyles, tt.opts)
			require.Error(t, err)
			require.Nil(t, catalog)
			require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
		})
	}
}

func TestBuildCatalogPropagatesSourceErrors(t *testing.T) {
	fetcher := adapters.NewLocationFetcherAdapter(map[types.SourceKind]string{
		types.SourceKindPorts:      filepath.Join(t.TempDir(), "missing.yml"),
		types.SourceKindUserstyles: filepath.Join(t.TempDir(), "missing.yml"),
	}, 0, 0, 0)
	_, err := BuildCatalog(t.Context(), NewServiceWithFetcher(fetcher).Source, BuildOptions{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
