// MODUL: results
// ZWECK: Formatierung und Export von Benchmark-Ergebnissen
// INPUT: Result Slices
// OUTPUT: Formatierte Ausgabe (Terminal-Tabelle, CSV, Markdown)
// NEBENEFFEKTE: Dateisystem-Schreibzugriff bei ExportCSV
// ABHAENGIGKEITEN: olekukonko/tablewriter, encoding/csv
// HINWEISE: CSV-Export verwendet Semikolon als Trennzeichen fuer DE-Kompatibilitaet

package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// ============================================================================
// Terminal-Ausgabe
// ============================================================================

// PrintResults gibt Benchmark-Ergebnisse formatiert auf stdout aus.
func PrintResults(results []Result) {
	PrintResultsTo(os.Stdout, results)
}

// PrintResultsTo gibt Ergebnisse als Tabelle auf einen beliebigen Writer aus.
func PrintResultsTo(w io.Writer, results []Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "Keine Ergebnisse vorhanden.")
		return
	}

	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			r.ImageSize,
			strconv.Itoa(r.BatchSize),
			r.OutputSize,
			formatDuration(r.AvgLatency),
			formatDuration(r.P95Latency),
			fmt.Sprintf("%.1f", r.Throughput),
			formatBytes(r.MemoryUsed),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"INPUT", "BATCH", "OUTPUT", "AVG LATENZ", "P95 LATENZ", "IMG/S", "MEMORY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

// ============================================================================
// Markdown-Ausgabe
// ============================================================================

// PrintMarkdown gibt Ergebnisse als Markdown-Tabelle aus.
func PrintMarkdown(w io.Writer, results []Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "_Keine Ergebnisse vorhanden._")
		return
	}

	fmt.Fprintln(w, "| Input | Batch | Output | Avg Latenz | P95 | Throughput | Memory |")
	fmt.Fprintln(w, "|-------|-------|--------|------------|-----|------------|--------|")

	for _, r := range results {
		fmt.Fprintf(w, "| %s | %d | %s | %s | %s | %.1f img/s | %s |\n",
			r.ImageSize,
			r.BatchSize,
			r.OutputSize,
			formatDuration(r.AvgLatency),
			formatDuration(r.P95Latency),
			r.Throughput,
			formatBytes(r.MemoryUsed),
		)
	}
}

// ============================================================================
// CSV-Export
// ============================================================================

// ExportCSV exportiert Ergebnisse als CSV-Datei.
func ExportCSV(results []Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv-datei erstellen: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, results)
}

// WriteCSV schreibt Ergebnisse als CSV auf einen Writer.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';' // Semikolon fuer DE-Excel-Kompatibilitaet

	header := []string{
		"image_size", "batch_size", "mixed_sizes", "iterations",
		"avg_latency_ms", "min_latency_ms", "max_latency_ms", "p95_latency_ms",
		"throughput_img_s", "memory_bytes", "output_size", "output_bytes_fp32", "output_bytes_fp16",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		if err := cw.Write(buildCSVRow(r)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// buildCSVRow erstellt eine CSV-Zeile aus einem Result.
func buildCSVRow(r Result) []string {
	return []string{
		r.ImageSize,
		strconv.Itoa(r.BatchSize),
		strconv.FormatBool(r.MixedSizes),
		strconv.Itoa(r.Iterations),
		strconv.FormatFloat(float64(r.AvgLatency.Microseconds())/1000, 'f', 3, 64),
		strconv.FormatFloat(float64(r.MinLatency.Microseconds())/1000, 'f', 3, 64),
		strconv.FormatFloat(float64(r.MaxLatency.Microseconds())/1000, 'f', 3, 64),
		strconv.FormatFloat(float64(r.P95Latency.Microseconds())/1000, 'f', 3, 64),
		strconv.FormatFloat(r.Throughput, 'f', 2, 64),
		strconv.FormatUint(r.MemoryUsed, 10),
		r.OutputSize,
		strconv.Itoa(r.OutputBytes),
		strconv.Itoa(r.OutputBytes16),
	}
}

// ============================================================================
// Sortierung
// ============================================================================

// SortByThroughput sortiert Ergebnisse nach Durchsatz (absteigend).
func SortByThroughput(results []Result) {
	sort.Slice(results, func(i, j int) bool { return results[i].Throughput > results[j].Throughput })
}

// SortByLatency sortiert Ergebnisse nach Latenz (aufsteigend).
func SortByLatency(results []Result) {
	sort.Slice(results, func(i, j int) bool { return results[i].AvgLatency < results[j].AvgLatency })
}

// ============================================================================
// Formatierungs-Hilfsfunktionen
// ============================================================================

// formatDuration formatiert eine Duration fuer menschliche Lesbarkeit.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// formatBytes formatiert Bytes fuer menschliche Lesbarkeit.
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
