package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"catppuccin-api/internal/adapters"
	"catppuccin-api/internal/app"
	"catppuccin-api/internal/shared"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "CATPPUCCIN_API"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	Source     sourceOptions
}

type sourceOptions struct {
	PortsSource      string
	UserstylesSource string
	RedisURL         string
	CacheTTLSec      int
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "catppuccin-api",
		Short:   "Read-only catalog of Catppuccin ports and userstyles",
		Version: version,
		// Execute prints the errbuilder message instead of cobra's rendering.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.Source.PortsSource, "ports-source", adapters.DefaultPortsURL, "Ports document path or URL")
	flags.StringVar(&cfg.Source.UserstylesSource, "userstyles-source", adapters.DefaultUserstylesURL, "Userstyles document path or URL")
	flags.StringVar(&cfg.Source.RedisURL, "redis-url", "", "Optional redis URL for caching source documents")
	flags.IntVar(&cfg.Source.CacheTTLSec, "cache-ttl", 3600, "Document cache TTL in seconds (0 = no expiry)")
	flags.IntVar(&cfg.Source.HTTPTimeoutSec, "http-timeout", 60, "HTTP timeout in seconds (0 = default)")
	flags.IntVar(&cfg.Source.HTTPRetries, "http-retries", 3, "HTTP retries (0 = default)")
	flags.IntVar(&cfg.Source.HTTPRetryDelayMs, "http-retry-delay-ms", 200, "HTTP retry base delay in ms (0 = default)")
	_ = viper.BindPFlag("ports_source", flags.Lookup("ports-source"))
	_ = viper.BindPFlag("userstyles_source", flags.Lookup("userstyles-source"))
	_ = viper.BindPFlag("redis_url", flags.Lookup("redis-url"))
	_ = viper.BindPFlag("cache_ttl", flags.Lookup("cache-ttl"))
	_ = viper.BindPFlag("http_timeout", flags.Lookup("http-timeout"))
	_ = viper.BindPFlag("http_retries", flags.Lookup("http-retries"))
	_ = viper.BindPFlag("http_retry_delay_ms", flags.Lookup("http-retry-delay-ms"))

	cmd.AddCommand(newServeCommand(&cfg.Source))
	cmd.AddCommand(newFetchCommand(&cfg.Source))
	cmd.AddCommand(newValidateCommand(&cfg.Source))
	cmd.AddCommand(newStatsCommand(&cfg.Source))
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("catppuccin-api")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/catppuccin-api")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// sourceConfig resolves the source flags against viper for cmd.
func sourceConfig(cmd *cobra.Command, opts sourceOptions) app.SourceConfig {
	return app.SourceConfig{
		PortsLocation:      resolveString(cmd, opts.PortsSource, "ports_source", "ports-source"),
		UserstylesLocation: resolveString(cmd, opts.UserstylesSource, "userstyles_source", "userstyles-source"),
		RedisURL:           resolveString(cmd, opts.RedisURL, "redis_url", "redis-url"),
		CacheTTL:           time.Duration(resolveInt(cmd, opts.CacheTTLSec, "cache_ttl", "cache-ttl")) * time.Second,
		HTTPTimeoutSec:     resolveInt(cmd, opts.HTTPTimeoutSec, "http_timeout", "http-timeout"),
		HTTPRetries:        resolveInt(cmd, opts.HTTPRetries, "http_retries", "http-retries"),
		HTTPRetryDelayMs:   resolveInt(cmd, opts.HTTPRetryDelayMs, "http_retry_delay_ms", "http-retry-delay-ms"),
	}
}

func newAppService(cmd *cobra.Command, opts sourceOptions) (app.Service, error) {
	return app.NewService(sourceConfig(cmd, opts))
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition, errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeInternal, errbuilder.CodeUnavailable:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	return shared.ErrorMessage(err)
}
