package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stockwellness/stockwellness/config"
	"github.com/stockwellness/stockwellness/internal/client"
	"github.com/stockwellness/stockwellness/internal/history"
	"github.com/stockwellness/stockwellness/internal/logger"
)

// newController builds the standard controller wiring for a command,
// attaching the analysis journal when one is configured.
func newController(cfg *config.Config) *Controller {
	ctrl := NewController(cfg, client.New(cfg), os.Stdout)
	if cfg.HistoryPath != "" {
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			logger.L().Warnw("history disabled", "path", cfg.HistoryPath, "error", err)
		} else {
			ctrl.SetHistory(store)
		}
	}
	return ctrl
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "stockwellness",
		Short: "StockWellness - Investment Analysis Terminal",
		Long: `StockWellness is a terminal client for the StockWellness analysis service.
It submits a stock ticker for analysis and renders the recommendation, detailed
analysis, price history, global news, investment literature and references.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				if err := cfg.LoadFile(path); err != nil {
					return fmt.Errorf("failed to load config file: %w", err)
				}
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.Debug = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return cfg.EnsureDirectories()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveMode(cmd, cfg)
		},
	}

	rootCmd.AddCommand(newAnalyzeCmd(cfg))
	rootCmd.AddCommand(newQuoteCmd(cfg))
	rootCmd.AddCommand(newHistoryCmd(cfg))
	rootCmd.AddCommand(newConfigCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().String("config", "", "Configuration file path")

	return rootCmd
}

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [SYMBOL]",
		Short: "Run an investment analysis for a stock symbol",
		Long: `Run a full investment analysis for a given stock ticker symbol.
Example: stockwellness analyze AAPL`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := ""
			if len(args) == 1 {
				symbol = args[0]
			} else {
				prompted, err := PromptForTicker()
				if err != nil {
					return err
				}
				symbol = prompted
			}

			return newController(cfg).Submit(cmd.Context(), symbol)
		},
	}
}

// newQuoteSession is stubbed in tests.
var newQuoteSession = func(cfg *config.Config) *InteractiveSession {
	return NewInteractiveSession(cfg, newController(cfg))
}

func newQuoteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "quote [SYMBOL]",
		Short: "Show a quick local market quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := newQuoteSession(cfg)
			session.showQuote(args[0])
			return nil
		},
	}
}

func newHistoryCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent analysis runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.HistoryPath == "" {
				return fmt.Errorf("history is disabled (set history_path or STOCKWELLNESS_HISTORY_PATH)")
			}
			store, err := history.Open(cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer store.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			entries, err := store.Recent(limit)
			if err != nil {
				return err
			}
			printHistory(os.Stdout, entries)
			return nil
		},
	}
	cmd.Flags().Int("limit", 10, "Maximum entries to show")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("StockWellness v1.0.0")
			fmt.Println("Investment Analysis Terminal")
		},
	}
}

func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Inspect and validate StockWellness configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("directory validation failed: %w", err)
			}
			fmt.Println("✅ Configuration is valid")
			return nil
		},
	})

	return configCmd
}

func showConfig(cfg *config.Config) {
	fmt.Println("📋 Current StockWellness Configuration:")
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("Backend URL:        %s\n", cfg.BackendURL)
	fmt.Printf("Request Timeout:    %s\n", cfg.RequestTimeout)
	fmt.Printf("Min Loading Time:   %s\n", cfg.MinLoadingTime)
	fmt.Printf("News Page Size:     %d\n", cfg.NewsPageSize)
	fmt.Println()
	fmt.Printf("Cache Enabled:      %t\n", cfg.CacheEnabled)
	fmt.Printf("Cache Directory:    %s\n", cfg.CacheDir)
	fmt.Printf("Cache TTL:          %s\n", cfg.CacheTTL)
	fmt.Printf("History Path:       %s\n", cfg.HistoryPath)
	fmt.Println()
	fmt.Printf("Animations:         %t\n", cfg.Animations)
	fmt.Printf("Debug Mode:         %t\n", cfg.Debug)
}

func runInteractiveMode(cmd *cobra.Command, cfg *config.Config) error {
	ctrl := newController(cfg)
	defer ctrl.History().Close()
	session := NewInteractiveSession(cfg, ctrl)
	return session.Start(cmd.Context())
}

func printHistory(out io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No analyses recorded yet.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %-6s %-12s %5.1f%%  %s\n",
			e.AnalyzedAt.Format("2006-01-02 15:04"),
			e.Symbol, e.Recommendation, e.Confidence, e.CompanyName)
	}
}
