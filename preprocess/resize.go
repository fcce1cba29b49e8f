// MODUL: resize
// ZWECK: Aspektkorrektes Resizing mit Langkanten-Limit und Divisor-Ausrichtung
// INPUT: Tensor-Gruppe gleicher Form, Ziel-Kantenlaenge, Divisor, Filter
// OUTPUT: Tensoren mit neuer Zielgroesse
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: golang.org/x/image/draw (Resize-Primitiv)
// HINWEISE: Divisor-Ausrichtung rundet immer ab, nie auf

package preprocess

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Maximalgroessen abgeleitet vom typischen Seitenverhaeltnis des COCO-Datensatzes
const (
	MaxLongerEdge  = 1333
	MaxShorterEdge = 800
)

// ============================================================================
// Fehler-Definitionen fuer Resize
// ============================================================================

var (
	// ErrZeroSizeOutput wird zurueckgegeben wenn die Divisor-Ausrichtung
	// eine Dimension auf 0 reduziert
	ErrZeroSizeOutput = errors.New("preprocess: size divisor floors output dimension to zero")

	// ErrUnsupportedChannels wird zurueckgegeben wenn das Resize-Primitiv
	// die Kanalzahl nicht verarbeiten kann
	ErrUnsupportedChannels = errors.New("preprocess: resize requires 3-channel images")
)

// ============================================================================
// Zielgroessen-Berechnung
// ============================================================================

// longerEdgeBound berechnet die maximale Laenge der laengeren Kante,
// proportional zur Ziel-Kantenlaenge der kuerzeren Kante.
func longerEdgeBound(shortestEdge int) int {
	return int(float64(MaxLongerEdge)/float64(MaxShorterEdge)*float64(shortestEdge) + 0.5)
}

// targetSize berechnet die Zielgroesse fuer ein Bild der Groesse (h, w).
// Schritte:
//  1. Kuerzere Kante auf shortestEdge skalieren, Aspekt bleibt erhalten.
//     Bei h == w wird die Breite fixiert und die Hoehe skaliert.
//  2. Ueberschreitet die laengere Kante das Limit, beide Kanten herunterskalieren.
//  3. Auf ganze Pixel runden (0.5 addieren, abschneiden).
//  4. Beide Dimensionen auf das naechstniedrigere Vielfache von sizeDivisor
//     abrunden (sizeDivisor 0 deaktiviert die Ausrichtung).
func targetSize(h, w, shortestEdge, sizeDivisor int) (int, int, error) {
	shorter := float64(shortestEdge)

	var newH, newW float64
	if h < w {
		newH = shorter
		newW = float64(w) * shorter / float64(h)
	} else {
		newH = float64(h) * shorter / float64(w)
		newW = shorter
	}

	longer := float64(longerEdgeBound(shortestEdge))
	if maxDim := max(newH, newW); maxDim > longer {
		scale := longer / maxDim
		newH *= scale
		newW *= scale
	}

	outH := int(newH + 0.5)
	outW := int(newW + 0.5)

	if sizeDivisor > 0 {
		outH = outH / sizeDivisor * sizeDivisor
		outW = outW / sizeDivisor * sizeDivisor
	}

	if outH <= 0 || outW <= 0 {
		return 0, 0, fmt.Errorf("%w: eingabe %dx%d, kante %d, divisor %d",
			ErrZeroSizeOutput, h, w, shortestEdge, sizeDivisor)
	}

	return outH, outW, nil
}

// ============================================================================
// Resize-Ausfuehrung
// ============================================================================

// resizeTensor skaliert einen rohen Pixel-Tensor auf (newH, newW).
// Das Resize-Primitiv arbeitet auf 8-bit RGBA-Rastern, deshalb muss das
// Resizing vor Rescale/Normalisierung laufen solange die Werte noch
// Rohpixel sind.
func resizeTensor(t *Tensor, newH, newW int, resample Resample) (*Tensor, error) {
	if t.Channels != 3 {
		return nil, fmt.Errorf("%w: %d kanaele", ErrUnsupportedChannels, t.Channels)
	}

	if newH == t.Height && newW == t.Width {
		return t.Clone(), nil
	}

	src := tensorToRGBA(t)
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	resample.interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return TensorFromImage(dst), nil
}

// resizeGroup skaliert eine Gruppe formgleicher Tensoren auf eine gemeinsame
// Zielgroesse.
func resizeGroup(group []*Tensor, shortestEdge, sizeDivisor int, resample Resample) ([]*Tensor, error) {
	if len(group) == 0 {
		return group, nil
	}

	h, w := group[0].Height, group[0].Width
	newH, newW, err := targetSize(h, w, shortestEdge, sizeDivisor)
	if err != nil {
		return nil, err
	}

	out := make([]*Tensor, len(group))
	for i, t := range group {
		resized, err := resizeTensor(t, newH, newW, resample)
		if err != nil {
			return nil, fmt.Errorf("bild %d: %w", i, err)
		}
		out[i] = resized
	}

	return out, nil
}
