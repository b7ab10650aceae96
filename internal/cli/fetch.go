package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"catppuccin-api/internal/app"
)

type fetchOptions struct {
	Output string
}

func newFetchCommand(source *sourceOptions) *cobra.Command {
	opts := fetchOptions{}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download both source documents into a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd.Context(), cmd, *source, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "data", "Directory for ports.yml and userstyles.yml")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runFetch(ctx context.Context, cmd *cobra.Command, source sourceOptions, opts fetchOptions) error {
	service, err := newAppService(cmd, source)
	if err != nil {
		return err
	}
	defer service.Close()

	result, err := service.Fetch(log.Logger.WithContext(ctx), app.FetchRequest{
		OutputDir: resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	for _, path := range result.Paths {
		fmt.Printf("wrote: %s\n", path)
	}
	return nil
}
