package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/leengari/mini-dataframe/internal/config"
	"github.com/leengari/mini-dataframe/internal/engine"
	"github.com/leengari/mini-dataframe/internal/logging"
	"github.com/leengari/mini-dataframe/internal/query/operations"
	"github.com/leengari/mini-dataframe/internal/repl"
	"github.com/leengari/mini-dataframe/internal/storage/loader"
)

var version = "0.1.0"

// globalFlags are shared by every subcommand
type globalFlags struct {
	configFile string
	logLevel   string
	separator  string
	batchSize  int
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "dfshell [file...]",
		Short: "Interactive shell for delimited-text dataframes",
		Long: `dfshell loads delimited text files into in-memory tables and lets you
filter, sort, clean and derive columns interactively, then save the result.

Files given as arguments are loaded before the prompt appears.`,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags)
			if err != nil {
				return err
			}
			return runShell(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Path to YAML configuration file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.separator, "sep", "", "Default field separator (single character or 'tab')")
	root.PersistentFlags().IntVar(&flags.batchSize, "batch-size", 0, "Rows added per storage growth step")

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dfshell v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Meta command: one-shot schema report
	var asJSON bool
	metaCmd := &cobra.Command{
		Use:   "meta <file>",
		Short: "Print the inferred column types and null counts of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags)
			if err != nil {
				return err
			}
			closeFn := setupLogging(cfg)
			defer closeFn()
			return writeMeta(cmd.OutOrStdout(), cfg, args[0], asJSON)
		},
	}
	metaCmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	root.AddCommand(metaCmd)

	return root
}

// resolveConfig loads the config file and applies flag overrides
func resolveConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.separator != "" {
		if strings.EqualFold(flags.separator, "tab") {
			flags.separator = "\t"
		}
		cfg.Ingest.DefaultSeparator = flags.separator
	}
	if flags.batchSize != 0 {
		cfg.Ingest.BatchSize = flags.batchSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) func() {
	logger, closeFn := logging.SetupLogger(cfg.Logging)
	slog.SetDefault(logger)
	return closeFn
}

func runShell(cfg *config.Config, files []string, in io.Reader, out io.Writer) error {
	closeFn := setupLogging(cfg)
	defer closeFn()

	slog.Debug("starting shell", "version", version, "batch_size", cfg.Ingest.BatchSize)

	eng := engine.New(cfg)
	eng.AddObserver(engine.NewLoggingObserver())

	for _, path := range files {
		res, err := eng.Load(path, 0)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		repl.PrintResult(out, res)
	}

	return repl.Start(eng, in, out)
}

func writeMeta(w io.Writer, cfg *config.Config, path string, asJSON bool) error {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t, err := loader.LoadFile(path, name, loader.OptionsFromConfig(cfg, 0))
	if err != nil {
		return err
	}
	meta := operations.Meta(t)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	fmt.Fprintf(w, "%s: %d rows, %d columns\n", path, meta.Rows, len(meta.Columns))
	for _, col := range meta.Columns {
		fmt.Fprintf(w, "  %-*s %-8s nulls=%d\n", cfg.Ingest.MaxColumnName, col.Name, col.Type, col.Nulls)
	}
	return nil
}
