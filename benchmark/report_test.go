// MODUL: report_test
// ZWECK: Tests fuer Report-Erstellung und Export-Formate
// INPUT: Synthetische Result-Listen
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine (schreibt nur in Buffer)
// ABHAENGIGKEITEN: testing, encoding/json
// HINWEISE: Prueft alle Ausgabeformate auf Kernfelder

package benchmark

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleResults() []Result {
	return []Result{
		{
			ImageSize:  "224x224",
			BatchSize:  1,
			Iterations: 10,
			AvgLatency: 2 * time.Millisecond,
			P95Latency: 3 * time.Millisecond,
			Throughput: 500,
			MemoryUsed: 1024 * 1024,
			OutputSize: "416x416",
		},
		{
			ImageSize:  "384x384",
			BatchSize:  4,
			Iterations: 10,
			AvgLatency: 5 * time.Millisecond,
			P95Latency: 8 * time.Millisecond,
			Throughput: 800,
			MemoryUsed: 4 * 1024 * 1024,
			OutputSize: "416x640",
		},
	}
}

func TestNewReportSummary(t *testing.T) {
	report := NewReport(sampleResults(), DefaultConfig(), "edge=384 divisor=32")

	if report.Summary.TotalTests != 2 {
		t.Errorf("TotalTests = %d, erwartet 2", report.Summary.TotalTests)
	}
	if report.Summary.BestThroughput != 800 {
		t.Errorf("BestThroughput = %f, erwartet 800", report.Summary.BestThroughput)
	}
	if report.Summary.BestConfig != "384x384 batch=4" {
		t.Errorf("BestConfig = %q, erwartet \"384x384 batch=4\"", report.Summary.BestConfig)
	}
	if report.Summary.WorstP95 != 8*time.Millisecond {
		t.Errorf("WorstP95 = %v, erwartet 8ms", report.Summary.WorstP95)
	}
	if report.SystemInfo.CPUCores <= 0 {
		t.Error("CPUCores sollte > 0 sein")
	}
}

func TestWriteJSON(t *testing.T) {
	report := NewReport(sampleResults(), DefaultConfig(), "default")

	var buf bytes.Buffer
	if err := report.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON fehlgeschlagen: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON nicht parsebar: %v", err)
	}
	for _, key := range []string{"timestamp", "system_info", "results", "summary"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON-Feld %q fehlt", key)
		}
	}
}

func TestWriteMarkdown(t *testing.T) {
	report := NewReport(sampleResults(), DefaultConfig(), "edge=384 divisor=32")

	var buf bytes.Buffer
	if err := report.WriteMarkdown(&buf); err != nil {
		t.Fatalf("WriteMarkdown fehlgeschlagen: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Preprocessing Benchmark Report", "224x224", "384x384", "edge=384 divisor=32"} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown enthaelt %q nicht", want)
		}
	}
}

func TestWriteConsole(t *testing.T) {
	report := NewReport(sampleResults(), DefaultConfig(), "default")

	var buf bytes.Buffer
	report.WriteConsole(&buf)

	out := buf.String()
	if !strings.Contains(out, "PREPROCESSING BENCHMARK REPORT") {
		t.Error("Konsolen-Header fehlt")
	}
	if !strings.Contains(out, "ZUSAMMENFASSUNG") {
		t.Error("Zusammenfassung fehlt")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteCSV fehlgeschlagen: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Zeilen = %d, erwartet 3 (Header + 2 Daten)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "image_size;batch_size") {
		t.Errorf("CSV-Header falsch: %q", lines[0])
	}
}

func TestPrintResultsToEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintResultsTo(&buf, nil)

	if !strings.Contains(buf.String(), "Keine Ergebnisse") {
		t.Error("leere Liste sollte Hinweis ausgeben")
	}
}

func TestPrintResultsToTable(t *testing.T) {
	var buf bytes.Buffer
	PrintResultsTo(&buf, sampleResults())

	out := buf.String()
	if !strings.Contains(out, "224x224") || !strings.Contains(out, "384x384") {
		t.Error("Tabelle enthaelt nicht alle Ergebnisse")
	}
}

func TestSortResults(t *testing.T) {
	results := sampleResults()

	SortByThroughput(results)
	if results[0].Throughput != 800 {
		t.Error("SortByThroughput sollte absteigend sortieren")
	}

	SortByLatency(results)
	if results[0].AvgLatency != 2*time.Millisecond {
		t.Error("SortByLatency sollte aufsteigend sortieren")
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatDuration(500 * time.Microsecond); got != "500.00us" {
		t.Errorf("formatDuration = %q, erwartet 500.00us", got)
	}
	if got := formatDuration(12 * time.Millisecond); got != "12.00ms" {
		t.Errorf("formatDuration = %q, erwartet 12.00ms", got)
	}
	if got := formatDuration(2 * time.Second); got != "2.00s" {
		t.Errorf("formatDuration = %q, erwartet 2.00s", got)
	}

	if got := formatBytes(512); got != "512 B" {
		t.Errorf("formatBytes = %q, erwartet 512 B", got)
	}
	if got := formatBytes(2 * 1024 * 1024); got != "2.0 MB" {
		t.Errorf("formatBytes = %q, erwartet 2.0 MB", got)
	}
}
