package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"catppuccin-api/internal/app"
)

type validateOptions struct {
	JSON       bool
	SkipChecks bool
}

func newValidateCommand(source *sourceOptions) *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build the catalog and report its summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, *source, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the summary as JSON")
	cmd.Flags().BoolVar(&opts.SkipChecks, "skip-checks", false, "Skip document checks; merge faults still fail")
	_ = viper.BindPFlag("validate_json", cmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("validate_skip_checks", cmd.Flags().Lookup("skip-checks"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, source sourceOptions, opts validateOptions) error {
	service, err := newAppService(cmd, source)
	if err != nil {
		return err
	}
	defer service.Close()

	result, err := service.Validate(log.Logger.WithContext(ctx), app.ValidateRequest{
		SkipChecks: resolveBool(cmd, opts.SkipChecks, "validate_skip_checks", "skip-checks"),
	})
	if err != nil {
		return err
	}
	if resolveBool(cmd, opts.JSON, "validate_json", "json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result.Summary)
	}
	summary := result.Summary
	fmt.Printf("validated: %d ports (%d native, %d userstyles) under %d identifiers\n",
		summary.Ports, summary.NativePorts, summary.Userstyles, summary.Identifiers)
	fmt.Printf("collaborators: %d\ncategories: %d\nshowcases: %d\n",
		summary.Collaborators, summary.Categories, summary.Showcases)
	return nil
}
