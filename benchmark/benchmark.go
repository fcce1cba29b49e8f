// MODUL: benchmark
// ZWECK: Benchmark-Suite fuer die Preprocessing-Pipeline mit Latenz- und Durchsatzmessung
// INPUT: preprocess.Processor, Config
// OUTPUT: Result-Liste mit detaillierten Metriken
// NEBENEFFEKTE: CPU-Last waehrend Benchmark, Speicherallokation
// ABHAENGIGKEITEN: preprocess, runtime (Speichermessung)
// HINWEISE: Warmup-Laeufe sind wichtig fuer stabile Messungen

package benchmark

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/7blacky7/visionprep/preprocess"
)

// ============================================================================
// Datenstrukturen - Ergebnisse
// ============================================================================

// Result enthaelt das Ergebnis eines einzelnen Benchmark-Laufs.
type Result struct {
	ImageSize     string        `json:"image_size"`     // Eingabegroesse z.B. "224x224"
	BatchSize     int           `json:"batch_size"`     // Batch-Groesse
	MixedSizes    bool          `json:"mixed_sizes"`    // Gemischte Groessen im Batch
	Iterations    int           `json:"iterations"`     // Anzahl Durchlaeufe
	TotalTime     time.Duration `json:"total_time"`     // Gesamtzeit aller Iterationen
	AvgLatency    time.Duration `json:"avg_latency"`    // Durchschnittliche Latenz pro Bild
	MinLatency    time.Duration `json:"min_latency"`    // Minimale Latenz
	MaxLatency    time.Duration `json:"max_latency"`    // Maximale Latenz
	P95Latency    time.Duration `json:"p95_latency"`    // 95. Perzentil Latenz
	Throughput    float64       `json:"throughput"`     // Bilder pro Sekunde
	MemoryUsed    uint64        `json:"memory_used"`    // Speicherverbrauch in Bytes
	OutputSize    string        `json:"output_size"`    // Ausgabegroesse nach Padding
	OutputBytes   int           `json:"output_bytes"`   // Ausgabedaten als FP32 in Bytes
	OutputBytes16 int           `json:"output_bytes16"` // Ausgabedaten als FP16 in Bytes
}

// ============================================================================
// Datenstrukturen - Konfiguration
// ============================================================================

// Config definiert die Parameter fuer einen Benchmark-Lauf.
type Config struct {
	Iterations int      `json:"iterations"`  // Anzahl Messungen (ohne Warmup)
	WarmupRuns int      `json:"warmup_runs"` // Anzahl Warmup-Laeufe (nicht gemessen)
	BatchSizes []int    `json:"batch_sizes"` // Zu testende Batch-Groessen
	ImageSizes []string `json:"image_sizes"` // Zu testende Bildgroessen z.B. "224x224"
	MixedSizes bool     `json:"mixed_sizes"` // Batches mit gemischten Groessen erzeugen
	Verbose    bool     `json:"verbose"`     // Detaillierte Ausgabe waehrend Benchmark
}

// DefaultConfig gibt eine Standard-Benchmark-Konfiguration zurueck.
func DefaultConfig() Config {
	return Config{
		Iterations: 20,
		WarmupRuns: 3,
		BatchSizes: []int{1, 4, 8},
		ImageSizes: []string{"224x224", "384x384", "512x512"},
		MixedSizes: false,
		Verbose:    false,
	}
}

// ============================================================================
// Haupt-Benchmark-Funktion
// ============================================================================

// Run fuehrt einen vollstaendigen Benchmark fuer einen Processor aus.
// Testet alle Kombinationen aus BatchSizes und ImageSizes.
func Run(proc *preprocess.Processor, config Config) ([]Result, error) {
	var results []Result

	for _, imageSize := range config.ImageSizes {
		width, height := parseImageSize(imageSize)
		if width == 0 || height == 0 {
			continue
		}

		for _, batchSize := range config.BatchSizes {
			result, err := benchmarkSingleConfig(proc, width, height, batchSize, config)
			if err != nil {
				return nil, fmt.Errorf("benchmark %s batch=%d: %w", imageSize, batchSize, err)
			}
			results = append(results, result)
		}
	}

	return results, nil
}

// ============================================================================
// Interne Benchmark-Logik
// ============================================================================

// benchmarkSingleConfig fuehrt den Benchmark fuer eine Konfiguration aus.
func benchmarkSingleConfig(proc *preprocess.Processor, width, height, batchSize int, config Config) (Result, error) {
	imageSize := fmt.Sprintf("%dx%d", width, height)

	// Testdaten generieren
	var batch []*preprocess.Tensor
	if config.MixedSizes {
		batch = GenerateMixedBatch(width, height, batchSize)
	} else {
		batch = GenerateTestBatch(width, height, batchSize)
	}

	// Warmup-Phase, prueft gleichzeitig die Konfiguration
	for i := 0; i < config.WarmupRuns; i++ {
		if _, err := proc.Process(batch); err != nil {
			return Result{}, err
		}
	}

	// GC erzwingen vor Messung
	runtime.GC()
	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	// Benchmark-Phase mit Latenzmessung
	latencies := make([]time.Duration, 0, config.Iterations)
	var lastOutput *preprocess.BatchFeature
	for i := 0; i < config.Iterations; i++ {
		start := time.Now()
		out, err := proc.Process(batch)
		if err != nil {
			return Result{}, err
		}
		latencies = append(latencies, time.Since(start))
		lastOutput = out
	}

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)

	return buildResult(imageSize, batchSize, latencies, lastOutput, memBefore, memAfter, config), nil
}

// buildResult erstellt das Result aus den Messungen.
func buildResult(imageSize string, batchSize int, latencies []time.Duration, output *preprocess.BatchFeature, memBefore, memAfter runtime.MemStats, config Config) Result {
	stats := calculateStats(latencies)
	totalImages := batchSize * config.Iterations

	result := Result{
		ImageSize:  imageSize,
		BatchSize:  batchSize,
		MixedSizes: config.MixedSizes,
		Iterations: config.Iterations,
		TotalTime:  stats.total,
		AvgLatency: stats.avg / time.Duration(batchSize),
		MinLatency: stats.min / time.Duration(batchSize),
		MaxLatency: stats.max / time.Duration(batchSize),
		P95Latency: stats.p95 / time.Duration(batchSize),
		Throughput: float64(totalImages) / stats.total.Seconds(),
		MemoryUsed: memAfter.Alloc - memBefore.Alloc,
	}

	if output != nil && output.Len() > 0 {
		first := output.PixelValues[0]
		result.OutputSize = fmt.Sprintf("%dx%d", first.Height, first.Width)

		var floats int
		for _, t := range output.PixelValues {
			floats += len(t.Data)
		}
		result.OutputBytes = floats * 4
		// FP16-Export halbiert die Transfergroesse zum Modell
		result.OutputBytes16 = len(first.Float16Data()) * 2 * output.Len()
	}

	return result
}

// ============================================================================
// Statistik-Hilfsfunktionen
// ============================================================================

// latencyStats enthaelt berechnete Latenz-Statistiken.
type latencyStats struct {
	total time.Duration
	avg   time.Duration
	min   time.Duration
	max   time.Duration
	p95   time.Duration
}

// calculateStats berechnet Statistiken aus Latenz-Messungen.
func calculateStats(latencies []time.Duration) latencyStats {
	if len(latencies) == 0 {
		return latencyStats{}
	}

	// Sortieren fuer Perzentile
	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range latencies {
		total += d
	}

	p95Idx := int(float64(len(sorted)) * 0.95)
	if p95Idx >= len(sorted) {
		p95Idx = len(sorted) - 1
	}

	return latencyStats{
		total: total,
		avg:   total / time.Duration(len(latencies)),
		min:   sorted[0],
		max:   sorted[len(sorted)-1],
		p95:   sorted[p95Idx],
	}
}

// ============================================================================
// Hilfsfunktionen - Parsing
// ============================================================================

// parseImageSize parsed einen String wie "224x224" zu width, height.
func parseImageSize(size string) (int, int) {
	var width, height int
	_, err := fmt.Sscanf(size, "%dx%d", &width, &height)
	if err != nil {
		return 0, 0
	}
	return width, height
}
