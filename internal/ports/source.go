package ports

import (
	"context"

	"catppuccin-api/internal/types"
)

// SourceDocumentPort hands the two parsed source documents to the core.
type SourceDocumentPort interface {
	LoadPorts(ctx context.Context) (types.PortsDocument, error)
	LoadUserstyles(ctx context.Context) (types.UserstylesDocument, error)
}

// DocumentFetcherPort retrieves the raw bytes of a source document.
type DocumentFetcherPort interface {
	Fetch(ctx context.Context, kind types.SourceKind) ([]byte, error)
}

// DocumentWriterPort persists raw source documents, e.g. for the fetch
// command.
type DocumentWriterPort interface {
	Write(kind types.SourceKind, data []byte) (string, error)
}
