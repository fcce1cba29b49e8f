// MODUL: report
// ZWECK: Report-Generierung fuer Benchmark-Ergebnisse (JSON, Markdown, Console)
// INPUT: Result Slices, Config, Pipeline-Beschreibung
// OUTPUT: Formatierte Reports mit Zusammenfassung
// NEBENEFFEKTE: Dateisystem-Schreibzugriff bei Export-Funktionen
// ABHAENGIGKEITEN: encoding/json, runtime
// HINWEISE: SystemInfo wird automatisch aus runtime ermittelt

package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// ============================================================================
// Datenstrukturen
// ============================================================================

// Report enthaelt alle Benchmark-Ergebnisse mit Metadaten.
type Report struct {
	Timestamp  time.Time     `json:"timestamp"`
	SystemInfo SystemInfo    `json:"system_info"`
	Pipeline   string        `json:"pipeline"`
	Config     Config        `json:"config"`
	Results    []Result      `json:"results"`
	Summary    ReportSummary `json:"summary"`
}

// SystemInfo enthaelt Systeminformationen zum Benchmark.
type SystemInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUCores  int    `json:"cpu_cores"`
	GoVersion string `json:"go_version"`
}

// ReportSummary fasst die wichtigsten Ergebnisse zusammen.
type ReportSummary struct {
	BestThroughput float64       `json:"best_throughput"`
	BestConfig     string        `json:"best_config"`
	WorstP95       time.Duration `json:"worst_p95"`
	TotalTests     int           `json:"total_tests"`
}

// ============================================================================
// Report-Erstellung
// ============================================================================

// NewReport erstellt einen neuen Report aus Benchmark-Ergebnissen.
// pipeline beschreibt die getestete Processor-Konfiguration.
func NewReport(results []Result, config Config, pipeline string) *Report {
	report := &Report{
		Timestamp:  time.Now(),
		SystemInfo: collectSystemInfo(),
		Pipeline:   pipeline,
		Config:     config,
		Results:    results,
	}
	report.Summary = generateSummary(results)
	return report
}

// collectSystemInfo ermittelt Systeminformationen aus der runtime.
func collectSystemInfo() SystemInfo {
	return SystemInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUCores:  runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
}

// generateSummary erstellt eine Zusammenfassung.
func generateSummary(results []Result) ReportSummary {
	summary := ReportSummary{TotalTests: len(results)}

	for _, r := range results {
		if r.Throughput > summary.BestThroughput {
			summary.BestThroughput = r.Throughput
			summary.BestConfig = fmt.Sprintf("%s batch=%d", r.ImageSize, r.BatchSize)
		}
		if r.P95Latency > summary.WorstP95 {
			summary.WorstP95 = r.P95Latency
		}
	}
	return summary
}

// ============================================================================
// JSON-Export
// ============================================================================

// ExportJSON exportiert den Report als JSON-Datei.
func (r *Report) ExportJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("json-datei erstellen: %w", err)
	}
	defer f.Close()
	return r.WriteJSON(f)
}

// WriteJSON schreibt den Report als JSON auf einen Writer.
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// ============================================================================
// Markdown-Export
// ============================================================================

// ExportMarkdown exportiert den Report als Markdown-Datei.
func (r *Report) ExportMarkdown(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("markdown-datei erstellen: %w", err)
	}
	defer f.Close()
	return r.WriteMarkdown(f)
}

// WriteMarkdown schreibt den Report als Markdown.
func (r *Report) WriteMarkdown(w io.Writer) error {
	fmt.Fprintf(w, "# Preprocessing Benchmark Report\n\n")
	fmt.Fprintf(w, "**Datum:** %s\n\n", r.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(w, "## Systeminfo\n\n")
	fmt.Fprintf(w, "- **OS:** %s\n- **Architektur:** %s\n- **CPU-Kerne:** %d\n- **Go:** %s\n\n",
		r.SystemInfo.OS, r.SystemInfo.Arch, r.SystemInfo.CPUCores, r.SystemInfo.GoVersion)

	fmt.Fprintf(w, "## Pipeline\n\n")
	fmt.Fprintf(w, "`%s`\n\n", r.Pipeline)

	fmt.Fprintf(w, "## Ergebnisse\n\n")
	PrintMarkdown(w, r.Results)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Zusammenfassung\n\n")
	fmt.Fprintf(w, "- **Beste Durchsatzrate:** %.1f img/s (%s)\n", r.Summary.BestThroughput, r.Summary.BestConfig)
	fmt.Fprintf(w, "- **Schlechteste P95-Latenz:** %s\n", formatDuration(r.Summary.WorstP95))
	fmt.Fprintf(w, "- **Tests durchgefuehrt:** %d\n", r.Summary.TotalTests)
	return nil
}

// ============================================================================
// Konsolen-Ausgabe
// ============================================================================

// PrintConsole gibt den Report auf der Konsole aus.
func (r *Report) PrintConsole() { r.WriteConsole(os.Stdout) }

// WriteConsole schreibt den Report fuer Konsolen-Ausgabe.
func (r *Report) WriteConsole(w io.Writer) {
	fmt.Fprintln(w, "\n========================================")
	fmt.Fprintln(w, "  PREPROCESSING BENCHMARK REPORT")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "  Datum: %s\n", r.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  System: %s/%s, %d CPU-Kerne\n",
		r.SystemInfo.OS, r.SystemInfo.Arch, r.SystemInfo.CPUCores)
	fmt.Fprintf(w, "  Pipeline: %s\n", r.Pipeline)
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w)

	PrintResultsTo(w, r.Results)

	fmt.Fprintln(w, "\nZUSAMMENFASSUNG:")
	fmt.Fprintf(w, "  Beste Durchsatzrate: %.1f img/s (%s)\n", r.Summary.BestThroughput, r.Summary.BestConfig)
	fmt.Fprintf(w, "  Schlechteste P95-Latenz: %s\n", formatDuration(r.Summary.WorstP95))
	fmt.Fprintf(w, "  Tests: %d\n\n", r.Summary.TotalTests)
}
