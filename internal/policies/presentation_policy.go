package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"catppuccin-api/internal/types"
)

const (
	MatchExact  = "exact"
	MatchFolded = "folded"
)

// PresentationPolicy decides how list and lookup results are shaped. All
// presentations read the same lookup index.
type PresentationPolicy struct {
	Presentation types.Presentation
}

// NewPresentationPolicy validates presentation. An empty value selects
// single-or-multiple.
func NewPresentationPolicy(presentation types.Presentation) (PresentationPolicy, error) {
	if presentation == "" {
		return PresentationPolicy{Presentation: types.PresentationSingleOrMultiple}, nil
	}
	parsed, ok := types.ParsePresentation(string(presentation))
	if !ok {
		return PresentationPolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown presentation: %s", presentation))
	}
	return PresentationPolicy{Presentation: parsed}, nil
}

// GroupsByIdentifier reports whether port listings are identifier -> ports
// and collaborator listings username -> collaborator.
func (p PresentationPolicy) GroupsByIdentifier() bool {
	return p.Presentation != types.PresentationFlat
}

// FoldsCase reports whether port lookups ignore case by default.
func (p PresentationPolicy) FoldsCase() bool {
	return p.Presentation == types.PresentationSingleOrMultiple
}

// CaseSensitive resolves a per-request match override. An empty override
// keeps the presentation default.
func (p PresentationPolicy) CaseSensitive(match string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(match)) {
	case "":
		return !p.FoldsCase(), nil
	case MatchExact:
		return true, nil
	case MatchFolded:
		return false, nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("match must be %s or %s, got %s", MatchExact, MatchFolded, match))
	}
}
