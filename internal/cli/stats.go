package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newStatsCommand(source *sourceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count ports per category, most used first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), cmd, *source)
		},
	}
}

func runStats(ctx context.Context, cmd *cobra.Command, source sourceOptions) error {
	service, err := newAppService(cmd, source)
	if err != nil {
		return err
	}
	defer service.Close()

	result, err := service.Stats(log.Logger.WithContext(ctx))
	if err != nil {
		return err
	}
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CATEGORY\tNAME\tPORTS")
	for _, usage := range result.Usage {
		fmt.Fprintf(writer, "%s\t%s\t%d\n", usage.Key, usage.Name, usage.Count)
	}
	return writer.Flush()
}
