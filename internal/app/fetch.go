package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/adapters"
	"catppuccin-api/internal/types"
)

var sourceKinds = []types.SourceKind{types.SourceKindPorts, types.SourceKindUserstyles}

// Fetch downloads both source documents into req.OutputDir. Each document
// is decoded before it is written so a broken upstream never lands on disk.
func (s Service) Fetch(ctx context.Context, req FetchRequest) (FetchResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return FetchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	writer := adapters.NewOutputFileAdapter(outputDir)
	result := FetchResult{}
	for _, kind := range sourceKinds {
		data, err := s.Fetcher.Fetch(ctx, kind)
		if err != nil {
			return FetchResult{}, err
		}
		if err := decodeKind(kind, data); err != nil {
			return FetchResult{}, err
		}
		path, err := writer.Write(kind, data)
		if err != nil {
			return FetchResult{}, err
		}
		log.Ctx(ctx).Debug().Str("document", string(kind)).Str("path", path).Msg("source document written")
		result.Paths = append(result.Paths, path)
	}
	return result, nil
}

func decodeKind(kind types.SourceKind, data []byte) error {
	switch kind {
	case types.SourceKindPorts:
		var doc types.PortsDocument
		return adapters.DecodeDocument(kind, data, &doc)
	default:
		var doc types.UserstylesDocument
		return adapters.DecodeDocument(kind, data, &doc)
	}
}
