// MODUL: benchmark_test
// ZWECK: Tests fuer die Benchmark-Suite
// INPUT: Kleine Processor-Konfigurationen und Mini-Batches
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, preprocess
// HINWEISE: Verwendet minimale Iterationszahlen fuer schnelle Laeufe

package benchmark

import (
	"testing"
	"time"

	"github.com/7blacky7/visionprep/preprocess"
)

func testProcessor(t *testing.T) *preprocess.Processor {
	t.Helper()
	proc, err := preprocess.NewProcessor(preprocess.WithShortestEdge(32))
	if err != nil {
		t.Fatalf("NewProcessor fehlgeschlagen: %v", err)
	}
	return proc
}

func TestRunProducesResults(t *testing.T) {
	config := Config{
		Iterations: 2,
		WarmupRuns: 1,
		BatchSizes: []int{1, 2},
		ImageSizes: []string{"48x48", "64x48"},
	}

	results, err := Run(testProcessor(t), config)
	if err != nil {
		t.Fatalf("Run fehlgeschlagen: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("Anzahl Ergebnisse = %d, erwartet 4", len(results))
	}

	for _, r := range results {
		if r.Iterations != 2 {
			t.Errorf("Iterations = %d, erwartet 2", r.Iterations)
		}
		if r.AvgLatency <= 0 {
			t.Error("AvgLatency sollte > 0 sein")
		}
		if r.Throughput <= 0 {
			t.Error("Throughput sollte > 0 sein")
		}
		if r.OutputSize == "" {
			t.Error("OutputSize sollte gesetzt sein")
		}
		if r.OutputBytes16*2 != r.OutputBytes {
			t.Errorf("FP16-Groesse %d sollte halbe FP32-Groesse %d sein",
				r.OutputBytes16, r.OutputBytes)
		}
	}
}

func TestRunSkipsInvalidSizes(t *testing.T) {
	config := Config{
		Iterations: 1,
		WarmupRuns: 0,
		BatchSizes: []int{1},
		ImageSizes: []string{"kaputt", "48x48"},
	}

	results, err := Run(testProcessor(t), config)
	if err != nil {
		t.Fatalf("Run fehlgeschlagen: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("Anzahl Ergebnisse = %d, erwartet 1 (ungueltige Groesse uebersprungen)", len(results))
	}
}

func TestRunMixedSizes(t *testing.T) {
	config := Config{
		Iterations: 1,
		WarmupRuns: 0,
		BatchSizes: []int{3},
		ImageSizes: []string{"48x48"},
		MixedSizes: true,
	}

	results, err := Run(testProcessor(t), config)
	if err != nil {
		t.Fatalf("Run fehlgeschlagen: %v", err)
	}

	if len(results) != 1 || !results[0].MixedSizes {
		t.Error("MixedSizes sollte im Ergebnis markiert sein")
	}
}

func TestRunPropagatesProcessError(t *testing.T) {
	// Kante 20 mit Divisor 32 erzeugt eine leere Ausgabedimension
	proc, err := preprocess.NewProcessor(preprocess.WithShortestEdge(20))
	if err != nil {
		t.Fatalf("NewProcessor fehlgeschlagen: %v", err)
	}

	config := Config{
		Iterations: 1,
		WarmupRuns: 1,
		BatchSizes: []int{1},
		ImageSizes: []string{"48x48"},
	}

	if _, err := Run(proc, config); err == nil {
		t.Error("Run sollte Pipeline-Fehler weiterreichen")
	}
}

func TestCalculateStats(t *testing.T) {
	latencies := []time.Duration{
		3 * time.Millisecond,
		1 * time.Millisecond,
		2 * time.Millisecond,
	}

	stats := calculateStats(latencies)

	if stats.total != 6*time.Millisecond {
		t.Errorf("total = %v, erwartet 6ms", stats.total)
	}
	if stats.avg != 2*time.Millisecond {
		t.Errorf("avg = %v, erwartet 2ms", stats.avg)
	}
	if stats.min != 1*time.Millisecond || stats.max != 3*time.Millisecond {
		t.Errorf("min/max = %v/%v, erwartet 1ms/3ms", stats.min, stats.max)
	}
	if stats.p95 != 3*time.Millisecond {
		t.Errorf("p95 = %v, erwartet 3ms", stats.p95)
	}
}

func TestCalculateStatsEmpty(t *testing.T) {
	stats := calculateStats(nil)
	if stats.total != 0 || stats.avg != 0 {
		t.Error("leere Eingabe sollte Null-Statistiken liefern")
	}
}

func TestParseImageSize(t *testing.T) {
	cases := []struct {
		in    string
		wantW int
		wantH int
	}{
		{"224x224", 224, 224},
		{"640x480", 640, 480},
		{"kaputt", 0, 0},
		{"", 0, 0},
	}

	for _, tc := range cases {
		w, h := parseImageSize(tc.in)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("parseImageSize(%q) = (%d, %d), erwartet (%d, %d)",
				tc.in, w, h, tc.wantW, tc.wantH)
		}
	}
}
