package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/trierouter/core/config"
	"github.com/dmitrymomot/trierouter/core/logger"
	"github.com/dmitrymomot/trierouter/core/router"
	"github.com/dmitrymomot/trierouter/pkg/routetable"
)

// cliConfig holds environment defaults; flags override them.
type cliConfig struct {
	Table     string `env:"ROUTEMATCH_TABLE" envDefault:"routes.yaml"`
	LogLevel  string `env:"ROUTEMATCH_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"ROUTEMATCH_LOG_FORMAT" envDefault:"text"`
	Normalize bool   `env:"ROUTEMATCH_NORMALIZE" envDefault:"false"`
}

type app struct {
	cfg cliConfig
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	config.MustLoad(&a.cfg)

	root := &cobra.Command{
		Use:   "routematch",
		Short: "Resolve request paths against a declarative route table",
		Long: `routematch loads a YAML route table and shows which routes match a
request, in the order a middleware chain would run them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.log = logger.New(
				logger.WithLevel(level),
				logger.WithFormat(a.cfg.LogFormat),
				logger.WithOutput(cmd.ErrOrStderr()),
			)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfg.Table, "table", "t", a.cfg.Table, "route table file")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format: text or json")
	pf.BoolVar(&a.cfg.Normalize, "normalize", a.cfg.Normalize, "apply Unicode NFC normalization to request paths")

	root.AddCommand(
		a.matchCmd(),
		a.routesCmd(),
		a.allowedCmd(),
		a.benchCmd(),
	)
	return root
}

// router loads the configured table and builds it.
func (a *app) router() (*router.Router[string], error) {
	table, err := routetable.LoadFile(a.cfg.Table)
	if err != nil {
		return nil, err
	}
	a.log.Debug("route table loaded",
		logger.Source(a.cfg.Table),
		logger.Count("routes", len(table.Routes)),
	)
	return table.Build(a.log)
}

func (a *app) path(p string) string {
	if a.cfg.Normalize {
		return routetable.NormalizePath(p)
	}
	return p
}
