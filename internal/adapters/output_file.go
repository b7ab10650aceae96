package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"catppuccin-api/internal/ports"
	"catppuccin-api/internal/types"
)

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

// DocumentFilename is the file a source document is stored under.
func DocumentFilename(kind types.SourceKind) string {
	return string(kind) + ".yml"
}

// Write stores data as <dir>/<kind>.yml and returns the path written.
func (a OutputFileAdapter) Write(kind types.SourceKind, data []byte) (string, error) {
	path, err := a.ensurePath(DocumentFilename(kind))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s document", kind)).
			WithCause(err)
	}
	return path, nil
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.DocumentWriterPort = OutputFileAdapter{}
