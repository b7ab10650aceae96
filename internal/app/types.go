package app

import (
	"encoding/json"
	"time"

	"catppuccin-api/internal/types"
)

// SourceConfig tells NewService where the two source documents live and how
// to reach them.
type SourceConfig struct {
	PortsLocation      string
	UserstylesLocation string
	RedisURL           string
	CacheTTL           time.Duration
	HTTPTimeoutSec     int
	HTTPRetries        int
	HTTPRetryDelayMs   int
}

type FetchRequest struct {
	OutputDir string
}

type FetchResult struct {
	Paths []string
}

type ValidateRequest struct {
	// SkipChecks builds without the document validator. Merge and enrichment
	// faults still fail the build.
	SkipChecks bool
}

type ValidateResult struct {
	Summary types.CatalogSummary
}

type StatsResult struct {
	Usage []types.CategoryUsage
}

// LookupKind is the cardinality of a port lookup.
type LookupKind int

const (
	LookupNotFound LookupKind = iota
	LookupSingle
	LookupMultiple
)

func (k LookupKind) String() string {
	switch k {
	case LookupSingle:
		return "single"
	case LookupMultiple:
		return "multiple"
	default:
		return "not-found"
	}
}

// PortLookup is the result of a get-port query. Multiple matches are always
// returned in full, never truncated to the first.
type PortLookup struct {
	Kind  LookupKind
	Ports []types.CatalogEntry
}

func newPortLookup(matches []types.CatalogEntry) PortLookup {
	switch len(matches) {
	case 0:
		return PortLookup{Kind: LookupNotFound}
	case 1:
		return PortLookup{Kind: LookupSingle, Ports: matches}
	default:
		return PortLookup{Kind: LookupMultiple, Ports: matches}
	}
}

// Single returns the lone match of a LookupSingle result.
func (l PortLookup) Single() (types.CatalogEntry, bool) {
	if l.Kind != LookupSingle {
		return types.CatalogEntry{}, false
	}
	return l.Ports[0], true
}

// MarshalJSON renders a single match as an object and several as an array.
func (l PortLookup) MarshalJSON() ([]byte, error) {
	if entry, ok := l.Single(); ok {
		return json.Marshal(entry)
	}
	if l.Ports == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Ports)
}

// PortListing is every port shaped by the active presentation.
type PortListing struct {
	Presentation types.Presentation
	Flat         []types.CatalogEntry
	Grouped      map[string][]types.CatalogEntry
}

func (l PortListing) MarshalJSON() ([]byte, error) {
	if l.Presentation == types.PresentationFlat {
		if l.Flat == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(l.Flat)
	}
	if l.Grouped == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(l.Grouped)
}

// CollaboratorListing is every collaborator shaped by the active
// presentation: a sequence for flat, a username map otherwise.
type CollaboratorListing struct {
	Presentation types.Presentation
	Flat         []types.Collaborator
	ByUsername   map[string]types.Collaborator
}

func (l CollaboratorListing) MarshalJSON() ([]byte, error) {
	if l.Presentation == types.PresentationFlat {
		if l.Flat == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(l.Flat)
	}
	if l.ByUsername == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(l.ByUsername)
}
