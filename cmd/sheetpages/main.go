// Package main provides the CLI entry point for sheetpages.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpages-go/internal/config"
	"github.com/ukaji3/sheetpages-go/pkg/sheetpages"
	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var (
	outputPath string
	outDir     string
	format     string
	pretty     bool
	configPath string
	verbose    bool
	flags      config.Flags
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetpages [input.xlsx|input.csv]...",
		Short: "Lay out spreadsheet rows as sorted, numbered print pages",
		Long: `sheetpages reads columns B and C of a spreadsheet, drops blank rows,
sorts by column C then column B, numbers the result, and lays it out in
pages of two columns. Output is JSON or a printable xlsx workbook.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	fl := rootCmd.Flags()
	fl.StringVarP(&outputPath, "output", "o", "", "Output file path (single input only; default: stdout for json)")
	fl.StringVar(&outDir, "out-dir", "", "Directory for per-input output files")
	fl.StringVar(&format, "format", "json", "Output format: json, xlsx")
	fl.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	fl.StringVar(&configPath, "config", "", "YAML layout config file")
	fl.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	fl.StringVar(&flags.Sheet, "sheet", "", "Sheet to read (default: first sheet)")
	fl.IntVar(&flags.PageSize, "page-size", sheetpages.DefaultPageSize, "Records per page")
	fl.IntVar(&flags.ColumnSize, "column-size", sheetpages.DefaultColumnSize, "Rows per page column")
	fl.StringVar(&flags.Locale, "locale", sheetpages.DefaultLocale, "BCP 47 locale used for sorting")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if format != "json" && format != "xlsx" {
		return fmt.Errorf("invalid format: %s (must be json or xlsx)", format)
	}
	if outputPath != "" && len(args) > 1 {
		return errors.New("--output accepts a single input; use --out-dir for several")
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var cfg *config.File
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	fl := cmd.Flags()
	flags.SheetSet = fl.Changed("sheet")
	flags.PageSizeSet = fl.Changed("page-size")
	flags.ColumnSizeSet = fl.Changed("column-size")
	flags.LocaleSet = fl.Changed("locale")

	opts, err := config.Resolve(cfg, flags)
	if err != nil {
		return err
	}
	opts.Logger = logger

	dests, err := destinations(args)
	if err != nil {
		return err
	}

	var (
		mu     sync.Mutex
		failed []string
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range args {
		g.Go(func() error {
			if err := processInput(ctx, input, dests[i], opts); err != nil {
				logger.Error("failed to process file", zap.String("input", input), zap.Error(err))
				mu.Lock()
				failed = append(failed, input)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) > 0 {
		sort.Strings(failed)
		return fmt.Errorf("could not process %d file(s): %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func processInput(ctx context.Context, input, dest string, opts sheetpages.Options) error {
	doc, err := sheetpages.ProcessFile(ctx, input, opts)
	if err != nil {
		return err
	}

	switch format {
	case "xlsx":
		return writeWorkbook(doc, dest)
	default:
		data, err := output.ToJSON(doc, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if dest == "" {
			_, err = fmt.Fprintln(os.Stdout, string(data))
			return err
		}
		return writeFile(dest, data)
	}
}

// destination returns the output path for input, or "" for stdout.
func destination(input string, inputs int) string {
	if outputPath != "" {
		return outputPath
	}
	if outDir == "" && inputs == 1 && format == "json" {
		return ""
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+".pages."+format)
}

// destinations maps every input to its output path, in argument order.
// Two inputs that would write the same file are rejected up front.
func destinations(inputs []string) ([]string, error) {
	dests := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, input := range inputs {
		dest := destination(input, len(inputs))
		if dest != "" {
			key := filepath.Clean(dest)
			if prev, ok := seen[key]; ok {
				return nil, fmt.Errorf("inputs %s and %s would both write %s", prev, input, dest)
			}
			seen[key] = input
		}
		dests[i] = dest
	}
	return dests, nil
}

func writeWorkbook(doc *models.Document, dest string) error {
	f, err := output.RenderWorkbook(doc)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}
	defer f.Close()

	if dir := filepath.Dir(dest); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return f.SaveAs(dest)
}

func writeFile(dest string, data []byte) error {
	if dir := filepath.Dir(dest); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(dest, data, 0644)
}
