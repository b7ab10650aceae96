package types

// Presentation selects how the query service shapes list and lookup
// responses over the same lookup index.
type Presentation string

const (
	// PresentationFlat lists ports as one identifier-tagged sequence and
	// matches identifiers exactly.
	PresentationFlat Presentation = "flat"
	// PresentationGrouped lists ports grouped by identifier and matches
	// identifiers exactly.
	PresentationGrouped Presentation = "grouped"
	// PresentationSingleOrMultiple groups like PresentationGrouped and folds
	// case when looking up a single identifier.
	PresentationSingleOrMultiple Presentation = "single-or-multiple"
)

func ParsePresentation(value string) (Presentation, bool) {
	switch Presentation(value) {
	case PresentationFlat, PresentationGrouped, PresentationSingleOrMultiple:
		return Presentation(value), true
	default:
		return "", false
	}
}

type SourceKind string

const (
	SourceKindPorts      SourceKind = "ports"
	SourceKindUserstyles SourceKind = "userstyles"
)
