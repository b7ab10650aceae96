package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"catppuccin-api/internal/ports"
	"catppuccin-api/internal/types"
)

// DocumentSourceAdapter fetches the two source documents and decodes them.
// YAML is the source format; JSON documents decode too since JSON is YAML.
type DocumentSourceAdapter struct {
	Fetcher ports.DocumentFetcherPort
}

func NewDocumentSourceAdapter(fetcher ports.DocumentFetcherPort) DocumentSourceAdapter {
	return DocumentSourceAdapter{Fetcher: fetcher}
}

func (a DocumentSourceAdapter) LoadPorts(ctx context.Context) (types.PortsDocument, error) {
	var doc types.PortsDocument
	if err := a.load(ctx, types.SourceKindPorts, &doc); err != nil {
		return types.PortsDocument{}, err
	}
	return doc, nil
}

func (a DocumentSourceAdapter) LoadUserstyles(ctx context.Context) (types.UserstylesDocument, error) {
	var doc types.UserstylesDocument
	if err := a.load(ctx, types.SourceKindUserstyles, &doc); err != nil {
		return types.UserstylesDocument{}, err
	}
	return doc, nil
}

func (a DocumentSourceAdapter) load(ctx context.Context, kind types.SourceKind, out any) error {
	data, err := a.Fetcher.Fetch(ctx, kind)
	if err != nil {
		return err
	}
	return DecodeDocument(kind, data, out)
}

// DecodeDocument parses data into out. Fields the catalog does not model are
// ignored.
func DecodeDocument(kind types.SourceKind, data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s document is empty", kind))
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse %s document", kind)).
			WithCause(err)
	}
	return nil
}

var _ ports.SourceDocumentPort = DocumentSourceAdapter{}
