package app

import "context"

// Validate builds the catalog and reports its summary. A nil error means the
// catalog would serve.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	catalog, err := BuildCatalog(ctx, s.Source, BuildOptions{SkipValidation: req.SkipChecks})
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Summary: catalog.Summary()}, nil
}

// Stats builds the catalog and counts identifiers per category, most used
// first.
func (s Service) Stats(ctx context.Context) (StatsResult, error) {
	catalog, err := BuildCatalog(ctx, s.Source, BuildOptions{})
	if err != nil {
		return StatsResult{}, err
	}
	return StatsResult{Usage: catalog.Index().CategoryUsage()}, nil
}
