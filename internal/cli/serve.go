package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"catppuccin-api/internal/app"
	"catppuccin-api/internal/httpapi"
	"catppuccin-api/internal/types"
)

type serveOptions struct {
	Addr         string
	Presentation string
}

func newServeCommand(source *sourceOptions) *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the catalog and serve it over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd, *source, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "addr", "0.0.0.0:3000", "Listen address")
	cmd.Flags().StringVar(&opts.Presentation, "presentation", string(types.PresentationSingleOrMultiple), "Response shape: flat, grouped or single-or-multiple")
	_ = viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("presentation", cmd.Flags().Lookup("presentation"))
	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, source sourceOptions, opts serveOptions) error {
	presentation, err := parsePresentation(resolveString(cmd, opts.Presentation, "presentation", "presentation"))
	if err != nil {
		return err
	}
	service, err := newAppService(cmd, source)
	if err != nil {
		return err
	}
	defer service.Close()

	ctx = log.Logger.WithContext(ctx)
	catalog, err := app.BuildCatalog(ctx, service.Source, app.BuildOptions{})
	if err != nil {
		return err
	}
	query, err := app.NewQueryService(catalog, presentation)
	if err != nil {
		return err
	}

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return httpapi.Serve(ctx, resolveString(cmd, opts.Addr, "addr", "addr"), httpapi.NewRouter(query, service.Cache))
}

func parsePresentation(value string) (types.Presentation, error) {
	if value == "" {
		return types.PresentationSingleOrMultiple, nil
	}
	presentation, ok := types.ParsePresentation(value)
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("presentation must be flat, grouped or single-or-multiple, got " + value)
	}
	return presentation, nil
}
