// MODUL: resize_test
// ZWECK: Tests fuer Zielgroessen-Berechnung und Resize-Ausfuehrung
// INPUT: Synthetische Tensoren und Groessen-Kombinationen
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing
// HINWEISE: Enthaelt das durchgerechnete Referenzbeispiel 200x300 / 400x300

package preprocess

import (
	"errors"
	"testing"
)

func TestLongerEdgeBound(t *testing.T) {
	// round(1333/800 * 384) = 640
	if got := longerEdgeBound(384); got != 640 {
		t.Errorf("longerEdgeBound(384) = %d, erwartet 640", got)
	}
	// round(1333/800 * 800) = 1333
	if got := longerEdgeBound(800); got != 1333 {
		t.Errorf("longerEdgeBound(800) = %d, erwartet 1333", got)
	}
}

func TestTargetSizeReferenceExample(t *testing.T) {
	// Bild 1: h < w -> Hoehe auf 384, Breite 300*384/200 = 576, kein Clamp
	h, w, err := targetSize(200, 300, 384, 32)
	if err != nil {
		t.Fatalf("targetSize fehlgeschlagen: %v", err)
	}
	if h != 384 || w != 576 {
		t.Errorf("targetSize(200, 300) = (%d, %d), erwartet (384, 576)", h, w)
	}

	// Bild 2: h >= w -> Breite auf 384, Hoehe 400*384/300 = 512
	h, w, err = targetSize(400, 300, 384, 32)
	if err != nil {
		t.Fatalf("targetSize fehlgeschlagen: %v", err)
	}
	if h != 512 || w != 384 {
		t.Errorf("targetSize(400, 300) = (%d, %d), erwartet (512, 384)", h, w)
	}
}

func TestTargetSizeSquare(t *testing.T) {
	// h == w nimmt den else-Zweig: Breite fixiert, Hoehe skaliert
	h, w, err := targetSize(300, 300, 384, 0)
	if err != nil {
		t.Fatalf("targetSize fehlgeschlagen: %v", err)
	}
	if h != 384 || w != 384 {
		t.Errorf("targetSize(300, 300) = (%d, %d), erwartet (384, 384)", h, w)
	}
}

func TestTargetSizeLongerEdgeClamp(t *testing.T) {
	// Extrem breites Bild: 100x1000 -> (384, 3840) ueberschreitet 640,
	// Skalierung mit 640/3840 ergibt (64, 640)
	h, w, err := targetSize(100, 1000, 384, 32)
	if err != nil {
		t.Fatalf("targetSize fehlgeschlagen: %v", err)
	}
	if h != 64 || w != 640 {
		t.Errorf("targetSize(100, 1000) = (%d, %d), erwartet (64, 640)", h, w)
	}
}

func TestTargetSizeDivisorFloors(t *testing.T) {
	// 333x500 -> Breite 500*384/333 = 576.58 -> gerundet 577 -> abgerundet 576
	h, w, err := targetSize(333, 500, 384, 32)
	if err != nil {
		t.Fatalf("targetSize fehlgeschlagen: %v", err)
	}
	if h != 384 || w != 576 {
		t.Errorf("targetSize(333, 500) = (%d, %d), erwartet (384, 576)", h, w)
	}
}

func TestTargetSizeDivisorDisabled(t *testing.T) {
	h, w, err := targetSize(333, 500, 384, 0)
	if err != nil {
		t.Fatalf("targetSize fehlgeschlagen: %v", err)
	}
	if h != 384 || w != 577 {
		t.Errorf("targetSize(333, 500, divisor=0) = (%d, %d), erwartet (384, 577)", h, w)
	}
}

func TestTargetSizeZeroOutput(t *testing.T) {
	// Kante 20 mit Divisor 32 floored auf 0
	if _, _, err := targetSize(100, 100, 20, 32); !errors.Is(err, ErrZeroSizeOutput) {
		t.Errorf("err = %v, erwartet ErrZeroSizeOutput", err)
	}
}

func TestTargetSizeProperties(t *testing.T) {
	// Beide Dimensionen sind Vielfache des Divisors, die laengere Kante
	// bleibt unter dem proportionalen Limit (Toleranz 1 Pixel)
	sizes := [][2]int{{123, 456}, {1080, 1920}, {640, 480}, {500, 500}, {768, 1024}}

	for _, s := range sizes {
		h, w, err := targetSize(s[0], s[1], 384, 32)
		if err != nil {
			t.Fatalf("targetSize(%d, %d) fehlgeschlagen: %v", s[0], s[1], err)
		}
		if h%32 != 0 || w%32 != 0 {
			t.Errorf("targetSize(%d, %d) = (%d, %d): kein Vielfaches von 32", s[0], s[1], h, w)
		}
		longer := longerEdgeBound(384)
		if h > longer+1 || w > longer+1 {
			t.Errorf("targetSize(%d, %d) = (%d, %d): ueberschreitet Limit %d", s[0], s[1], h, w, longer)
		}
	}
}

func TestResizeTensorNearest(t *testing.T) {
	// 3x1x1 Tensor hochskaliert: alle Pixel behalten die Originalfarbe
	src := &Tensor{Data: []float32{10, 20, 30}, Channels: 3, Height: 1, Width: 1}

	dst, err := resizeTensor(src, 2, 2, ResampleNearest)
	if err != nil {
		t.Fatalf("resizeTensor fehlgeschlagen: %v", err)
	}

	if dst.Height != 2 || dst.Width != 2 {
		t.Fatalf("Form = (%d, %d), erwartet (2, 2)", dst.Height, dst.Width)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if dst.At(0, y, x) != 10 || dst.At(1, y, x) != 20 || dst.At(2, y, x) != 30 {
				t.Errorf("Pixel (%d, %d) = (%f, %f, %f), erwartet (10, 20, 30)",
					y, x, dst.At(0, y, x), dst.At(1, y, x), dst.At(2, y, x))
			}
		}
	}
}

func TestResizeTensorSolidBicubic(t *testing.T) {
	// Einfarbige Bilder bleiben unter jedem Filter einfarbig
	src := solidTensor(3, 8, 8, 128)

	dst, err := resizeTensor(src, 4, 6, ResampleBicubic)
	if err != nil {
		t.Fatalf("resizeTensor fehlgeschlagen: %v", err)
	}

	for i, v := range dst.Data {
		if v != 128 {
			t.Fatalf("Data[%d] = %f, erwartet 128", i, v)
		}
	}
}

func TestResizeTensorSameSizeClones(t *testing.T) {
	src := solidTensor(3, 4, 4, 50)

	dst, err := resizeTensor(src, 4, 4, ResampleBicubic)
	if err != nil {
		t.Fatalf("resizeTensor fehlgeschlagen: %v", err)
	}

	dst.Data[0] = 99
	if src.Data[0] == 99 {
		t.Error("resizeTensor bei gleicher Groesse teilt Speicher mit der Eingabe")
	}
}

func TestResizeTensorUnsupportedChannels(t *testing.T) {
	src := NewZeroTensor(1, 4, 4)

	if _, err := resizeTensor(src, 2, 2, ResampleBicubic); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("err = %v, erwartet ErrUnsupportedChannels", err)
	}
}

func TestResizeGroup(t *testing.T) {
	group := []*Tensor{solidTensor(3, 200, 300, 100), solidTensor(3, 200, 300, 200)}

	out, err := resizeGroup(group, 384, 32, ResampleBilinear)
	if err != nil {
		t.Fatalf("resizeGroup fehlgeschlagen: %v", err)
	}

	for i, tensor := range out {
		if tensor.Height != 384 || tensor.Width != 576 {
			t.Errorf("bild %d: Form = (%d, %d), erwartet (384, 576)", i, tensor.Height, tensor.Width)
		}
	}
}
