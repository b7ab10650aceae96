package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catppuccin-api/internal/types"
)

func TestValidatePortsDocumentCases(t *testing.T) {
	validator := NewDocumentValidator()

	tests := []struct {
		name     string
		build    func() types.PortsDocument
		wantErr      bool
		precondition bool
	}{
		{
			name:    "valid document",
			build:   basePortsDocument,
			wantErr: false,
		},
		{
			name: "empty document",
			build: func() types.PortsDocument {
				return types.PortsDocument{}
			},
			wantErr: true,
		},
		{
			name: "collaborator outside github",
			build: func() types.PortsDocument {
				doc := basePortsDocument()
				doc.Collaborators = append(doc.Collaborators, types.Collaborator{URL: "https://codeberg.org/x"})
				return doc
			},
			wantErr:      true,
			precondition: true,
		},
		{
			name: "maintainer outside github",
			build: func() types.PortsDocument {
				doc := basePortsDocument()
				port := doc.Ports[0].Value
				port.PastMaintainers = []types.Collaborator{{URL: "https://example.com/x"}}
				doc.Ports[0].Value = port
				return doc
			},
			wantErr:      true,
			precondition: true,
		},
		{
			name: "port without name",
			build: func() types.PortsDocument {
				doc := basePortsDocument()
				doc.Ports[0].Value.Name = " "
				return doc
			},
			wantErr: true,
		},
		{
			name: "link without url",
			build: func() types.PortsDocument {
				doc := basePortsDocument()
				doc.Ports[0].Value.Links = []types.Link{{Name: "Docs"}}
				return doc
			},
			wantErr: true,
		},
		{
			name: "duplicate category key",
			build: func() types.PortsDocument {
				doc := basePortsDocument()
				doc.Categories = append(doc.Categories, types.Category{Key: "terminal", Name: "Again"})
				return doc
			},
			wantErr:      true,
			precondition: true,
		},
		{
			name: "showcase without link",
			build: func() types.PortsDocument {
				doc := basePortsDocument()
				doc.Showcases = []types.Showcase{{Title: "Somewhere"}}
				return doc
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePorts(t.Context(), tt.build())
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.precondition {
				assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
				return
			}
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestValidateUserstylesDocument(t *testing.T) {
	validator := NewDocumentValidator()
	doc := types.UserstylesDocument{
		Collaborators: []types.Collaborator{collaborator("bob")},
		Userstyles: types.Entries[types.Userstyle]{
			{Identifier: "github", Value: sampleUserstyle("GitHub", "social")},
		},
	}
	require.NoError(t, validator.ValidateUserstyles(t.Context(), doc))

	broken := sampleUserstyle("Broken")
	broken.Readme.AppLink = types.Multiple()
	doc.Userstyles = append(doc.Userstyles, types.Entry[types.Userstyle]{Identifier: "broken", Value: broken})
	err := validator.ValidateUserstyles(t.Context(), doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "userstyle broken has no app link")
}

func basePortsDocument() types.PortsDocument {
	return types.PortsDocument{
		Collaborators: []types.Collaborator{collaborator("alice")},
		Categories:    sampleCategories(),
		Ports: types.Entries[types.Port]{
			{Identifier: "alacritty", Value: nativePort("Alacritty", "terminal")},
		},
		Showcases: []types.Showcase{{Title: "Site", Description: "A site", Link: "https://example.com"}},
	}
}
