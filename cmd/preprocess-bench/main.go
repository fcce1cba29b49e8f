// MODUL: preprocess-bench/main
// ZWECK: CLI-Tool fuer Preprocessing-Pipeline-Benchmarks
// INPUT: CLI-Flags (--iterations, --batch, --sizes, --format, etc.)
// OUTPUT: Benchmark-Ergebnisse (Terminal/Markdown/JSON/CSV)
// NEBENEFFEKTE: Schreibt optionale Report-Dateien
// ABHAENGIGKEITEN: preprocess, benchmark, spf13/cobra, log/slog
// HINWEISE: Pipeline-Parameter koennen auch via VISIONPREP_ ENV gesetzt werden

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/7blacky7/visionprep/benchmark"
	"github.com/7blacky7/visionprep/preprocess"
)

// ============================================================================
// CLI-Konfiguration
// ============================================================================

// cliOptions enthaelt alle CLI-Flags.
type cliOptions struct {
	iterations   int
	warmup       int
	batchSizes   string
	imageSizes   string
	mixed        bool
	format       string
	output       string
	shortestEdge int
	sizeDivisor  int
	resample     string
	noPad        bool
	stacked      bool
	verbose      bool
}

// ============================================================================
// Main-Funktion
// ============================================================================

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand erstellt das Root-Command mit allen Flags.
func newRootCommand() *cobra.Command {
	opts := cliOptions{}

	cmd := &cobra.Command{
		Use:   "preprocess-bench",
		Short: "Benchmark fuer die Bild-Preprocessing-Pipeline",
		Long: "Misst Latenz, Durchsatz und Speicherverbrauch der Preprocessing-Pipeline\n" +
			"(Resize, Rescale, Normalisierung, Padding) fuer verschiedene Bild- und Batch-Groessen.",
		Example: "  preprocess-bench --iterations 50 --batch 1,4,8\n" +
			"  preprocess-bench --sizes 640x480,1920x1080 --mixed --format markdown\n" +
			"  preprocess-bench --format json --output report.json",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)
			return runBenchmark(opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.iterations, "iterations", 20, "Anzahl Benchmark-Iterationen")
	flags.IntVar(&opts.warmup, "warmup", 3, "Anzahl Warmup-Laeufe")
	flags.StringVar(&opts.batchSizes, "batch", "1,4,8", "Batch-Groessen (kommasepariert)")
	flags.StringVar(&opts.imageSizes, "sizes", "224x224,384x384,512x512", "Bildgroessen (kommasepariert)")
	flags.BoolVar(&opts.mixed, "mixed", false, "Batches mit gemischten Groessen (erzwingt Padding)")
	flags.StringVar(&opts.format, "format", "table", "Ausgabeformat: table, markdown, json, csv")
	flags.StringVar(&opts.output, "output", "", "Report-Ausgabedatei (optional)")
	flags.IntVar(&opts.shortestEdge, "edge", 384, "Ziel-Laenge der kuerzeren Bildkante")
	flags.IntVar(&opts.sizeDivisor, "divisor", 32, "Dimensions-Divisor (0 = deaktiviert)")
	flags.StringVar(&opts.resample, "resample", "bicubic", "Interpolationsfilter: bicubic, bilinear, nearest")
	flags.BoolVar(&opts.noPad, "no-pad", false, "Padding und Masken-Erzeugung deaktivieren")
	flags.BoolVar(&opts.stacked, "stacked", false, "Ausgabe als gestapelter NCHW-Tensor")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Ausfuehrliche Ausgabe")

	return cmd
}

// setupLogging konfiguriert den Default-Logger.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// ============================================================================
// Benchmark-Ausfuehrung
// ============================================================================

// runBenchmark fuehrt den eigentlichen Benchmark aus.
func runBenchmark(opts cliOptions) error {
	proc, err := buildProcessor(opts)
	if err != nil {
		return fmt.Errorf("processor erstellen: %w", err)
	}

	procConfig := proc.Config()
	slog.Debug("processor konfiguriert", "config", procConfig.String())

	benchConfig := buildBenchConfig(opts)
	if len(benchConfig.BatchSizes) == 0 || len(benchConfig.ImageSizes) == 0 {
		return fmt.Errorf("--batch und --sizes duerfen nicht leer sein")
	}

	results, err := benchmark.Run(proc, benchConfig)
	if err != nil {
		return err
	}

	return outputResults(results, benchConfig, procConfig.String(), opts)
}

// buildProcessor erstellt den Processor aus CLI-Optionen.
func buildProcessor(opts cliOptions) (*preprocess.Processor, error) {
	resample, err := preprocess.ParseResample(opts.resample)
	if err != nil {
		return nil, err
	}

	mode := preprocess.ReturnNone
	if opts.stacked {
		mode = preprocess.ReturnStacked
	}

	// ENV-Werte als Basis, CLI-Flags ueberschreiben
	config := preprocess.LoadConfigFromEnv()
	config.Apply(
		preprocess.WithShortestEdge(opts.shortestEdge),
		preprocess.WithSizeDivisor(opts.sizeDivisor),
		preprocess.WithResample(resample),
		preprocess.WithPad(!opts.noPad),
		preprocess.WithReturnMode(mode),
	)

	return preprocess.NewProcessorFromConfig(config)
}

// buildBenchConfig erstellt die Benchmark-Konfiguration aus CLI-Optionen.
func buildBenchConfig(opts cliOptions) benchmark.Config {
	return benchmark.Config{
		Iterations: opts.iterations,
		WarmupRuns: opts.warmup,
		BatchSizes: parseIntList(opts.batchSizes),
		ImageSizes: parseStringList(opts.imageSizes),
		MixedSizes: opts.mixed,
		Verbose:    opts.verbose,
	}
}

// ============================================================================
// Ergebnis-Ausgabe
// ============================================================================

// outputResults gibt die Ergebnisse im gewuenschten Format aus.
func outputResults(results []benchmark.Result, config benchmark.Config, pipeline string, opts cliOptions) error {
	switch opts.format {
	case "json":
		report := benchmark.NewReport(results, config, pipeline)
		if opts.output != "" {
			return report.ExportJSON(opts.output)
		}
		return report.WriteJSON(os.Stdout)
	case "markdown":
		report := benchmark.NewReport(results, config, pipeline)
		if opts.output != "" {
			return report.ExportMarkdown(opts.output)
		}
		return report.WriteMarkdown(os.Stdout)
	case "csv":
		if opts.output != "" {
			return benchmark.ExportCSV(results, opts.output)
		}
		return benchmark.WriteCSV(os.Stdout, results)
	case "table":
		benchmark.NewReport(results, config, pipeline).PrintConsole()
	default:
		return fmt.Errorf("unbekanntes Format: %q", opts.format)
	}

	// Zusaetzlich CSV exportieren wenn --output angegeben
	if opts.output != "" {
		return benchmark.ExportCSV(results, opts.output)
	}
	return nil
}

// ============================================================================
// Parsing-Hilfsfunktionen
// ============================================================================

// parseIntList parst eine kommaseparierte Liste von Integers.
func parseIntList(s string) []int {
	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &n); err == nil && n > 0 {
			result = append(result, n)
		}
	}
	return result
}

// parseStringList parst eine kommaseparierte Liste von Strings.
func parseStringList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
