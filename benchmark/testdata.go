// MODUL: testdata
// ZWECK: Generierung von synthetischen Testtensoren fuer Benchmarks
// INPUT: Bildgroesse (width, height), Batch-Anzahl
// OUTPUT: preprocess.Tensor Instanzen mit Rohpixelwerten [0, 255]
// NEBENEFFEKTE: Keine (rein speicherbasiert)
// ABHAENGIGKEITEN: preprocess, math/rand
// HINWEISE: Gradienten-Muster plus Rauschen fuer realistische Interpolationslast

package benchmark

import (
	"math/rand"

	"github.com/7blacky7/visionprep/preprocess"
)

// ============================================================================
// Testtensor-Generierung
// ============================================================================

// GenerateTestTensor generiert einen Testtensor der angegebenen Groesse.
// Der Tensor enthaelt ein Gradienten-Muster mit Rauschen.
func GenerateTestTensor(width, height int) *preprocess.Tensor {
	return GenerateTestTensorWithSeed(width, height, 42)
}

// GenerateTestTensorWithSeed generiert einen Testtensor mit definiertem Seed.
// Nuetzlich fuer reproduzierbare Benchmarks.
func GenerateTestTensorWithSeed(width, height int, seed int64) *preprocess.Tensor {
	rng := rand.New(rand.NewSource(seed))
	t := preprocess.NewZeroTensor(3, height, width)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := calculatePixel(x, y, width, height, rng)
			t.Set(0, y, x, r)
			t.Set(1, y, x, g)
			t.Set(2, y, x, b)
		}
	}

	return t
}

// GenerateTestBatch generiert einen Batch gleich grosser Testtensoren.
func GenerateTestBatch(width, height, count int) []*preprocess.Tensor {
	batch := make([]*preprocess.Tensor, count)
	for i := 0; i < count; i++ {
		// Unterschiedliche Seeds fuer Variation
		batch[i] = GenerateTestTensorWithSeed(width, height, int64(i*1000))
	}
	return batch
}

// GenerateMixedBatch generiert einen Batch mit variierenden Groessen.
// Erzwingt den Padding-Pfad der Pipeline, da die Formen abweichen.
func GenerateMixedBatch(width, height, count int) []*preprocess.Tensor {
	batch := make([]*preprocess.Tensor, count)
	for i := 0; i < count; i++ {
		// Abwechselnd Original, Querformat und Hochformat
		w, h := width, height
		switch i % 3 {
		case 1:
			w = width * 3 / 2
		case 2:
			h = height * 3 / 2
		}
		batch[i] = GenerateTestTensorWithSeed(w, h, int64(i*1000))
	}
	return batch
}

// ============================================================================
// Pixel-Berechnung
// ============================================================================

// calculatePixel berechnet RGB-Rohwerte eines Pixels basierend auf Position.
func calculatePixel(x, y, width, height int, rng *rand.Rand) (float32, float32, float32) {
	// Normalisierte Koordinaten
	nx := float64(x) / float64(width)
	ny := float64(y) / float64(height)

	// Basis-Gradient
	r := nx * 255
	g := ny * 255
	b := (nx + ny) / 2 * 255

	// Rauschen hinzufuegen fuer Realismus
	noise := rng.Float64()*20 - 10
	return clampPixel(r + noise), clampPixel(g + noise), clampPixel(b + noise)
}

// ============================================================================
// Spezielle Testmuster
// ============================================================================

// GenerateCheckerboardTensor erstellt ein Schachbrettmuster.
// Nuetzlich fuer Edge-Case-Tests mit hohem Kontrast.
func GenerateCheckerboardTensor(width, height, tileSize int) *preprocess.Tensor {
	t := preprocess.NewZeroTensor(3, height, width)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var v float32
			if ((x/tileSize)+(y/tileSize))%2 == 0 {
				v = 255
			}
			t.Set(0, y, x, v)
			t.Set(1, y, x, v)
			t.Set(2, y, x, v)
		}
	}

	return t
}

// GenerateSolidTensor erstellt einen einfarbigen Testtensor.
// Nuetzlich fuer Baseline-Messungen mit minimaler Komplexitaet.
func GenerateSolidTensor(width, height int, value float32) *preprocess.Tensor {
	t := preprocess.NewZeroTensor(3, height, width)
	for i := range t.Data {
		t.Data[i] = value
	}
	return t
}

// ============================================================================
// Hilfsfunktionen
// ============================================================================

// clampPixel begrenzt einen Wert auf den gueltigen Pixelbereich.
func clampPixel(v float64) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return float32(v)
}
