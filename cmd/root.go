// Package cmd implements the bizlens CLI commands.
package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizlens/internal/config"
	"github.com/theirongolddev/bizlens/internal/logging"
	"github.com/theirongolddev/bizlens/internal/money"
	"github.com/theirongolddev/bizlens/internal/pipeline"
	"github.com/theirongolddev/bizlens/internal/query"
	"github.com/theirongolddev/bizlens/internal/source"
	"github.com/theirongolddev/bizlens/internal/tui/theme"
)

var (
	flagDataFile    string
	flagSheet       string
	flagTable       string
	flagQuiet       bool
	flagLogLevel    string
	flagLogJSON     bool
	flagCurrency    string
	flagGroupDigits bool
)

var rootCmd = &cobra.Command{
	Use:               "bizlens",
	Short:             "Ask questions about your business data",
	Long:              "Load monthly business data from CSV, Excel or SQLite and answer questions about sales, profit, customers and costs.",
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagDataFile, "data", "f", "", "Business data file (.csv, .tsv, .xlsx, .db)")
	pf.StringVar(&flagSheet, "sheet", "", "Worksheet to read from an xlsx file")
	pf.StringVar(&flagTable, "table", "", "Table to read from a SQLite file")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress load notices")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.BoolVar(&flagLogJSON, "log-json", false, "Emit logs as JSON")
	pf.StringVar(&flagCurrency, "currency", "", "Currency code or symbol (default: from data headers)")
	pf.BoolVar(&flagGroupDigits, "group-digits", false, "Group amounts in thousands (₹1,234,567)")
}

// app is the process-wide state shared by commands.
type app struct {
	cfg    config.Config
	result *source.Result
	router *query.Router
}

var (
	loadOnce sync.Once
	loaded   *app
	loadErr  error
	cfg      config.Config
)

// initRuntime loads .env and config, then configures logging and the theme.
func initRuntime(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if err := logging.Setup(flagLogLevel, flagLogJSON); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		logging.L.WithError(err).Warn("config unreadable, using defaults")
		cfg = config.DefaultConfig()
	}
	theme.SetActive(cfg.Display.Theme)

	if cmd.Flags().Changed("group-digits") {
		cfg.Display.GroupDigits = flagGroupDigits
	}
	if flagCurrency != "" {
		cfg.Display.CurrencySymbol = flagCurrency
	}
	return nil
}

// loadApp loads the dataset once and builds the engine and router over it.
// Flags override environment, which overrides the config file.
func loadApp() (*app, error) {
	loadOnce.Do(func() {
		path := flagDataFile
		if path == "" {
			path = config.GetDataFile(cfg)
		}
		opts := source.Options{Sheet: flagSheet, Table: flagTable}
		if opts.Sheet == "" {
			opts.Sheet = cfg.General.Sheet
		}
		if opts.Table == "" {
			opts.Table = cfg.General.SQLiteTable
		}

		res, err := source.Load(path, opts)
		if err != nil {
			loadErr = fmt.Errorf("loading %s: %w", path, err)
			return
		}
		if res.Fallback {
			logging.L.WithError(res.Reason).Warn("using built-in sample data")
			if !flagQuiet {
				fmt.Fprintln(os.Stderr, "  Using built-in sample data (set --data or run `bizlens setup`)")
			}
		}

		f := money.Formatter{
			Symbol: config.ResolveCurrencySymbol(cfg.Display.CurrencySymbol, res.Unit, money.DefaultSymbol),
			Group:  cfg.Display.GroupDigits,
		}
		logging.L.WithFields(logrus.Fields{
			"source": res.Dataset.Source,
			"months": res.Dataset.Len(),
			"symbol": f.Symbol,
		}).Debug("dataset loaded")

		loaded = &app{
			cfg:    cfg,
			result: res,
			router: query.NewRouter(pipeline.New(res.Dataset, f)),
		}
	})
	return loaded, loadErr
}

func (a *app) engine() *pipeline.Engine { return a.router.Engine() }

func (a *app) money() money.Formatter { return a.engine().Money() }

// sourceLabel names the dataset for headers and the status bar.
func (a *app) sourceLabel() string {
	if a.result.Fallback {
		return source.SampleSource
	}
	return a.result.Dataset.Source
}
