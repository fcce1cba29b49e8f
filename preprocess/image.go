// MODUL: image
// ZWECK: Konvertierung zwischen dekodierten Bildern und rohen CHW-Tensoren
// INPUT: image.Image (vom externen Bild-Loader) oder Tensor mit Rohpixeln
// OUTPUT: Tensor mit Rohwerten [0, 255] bzw. *image.RGBA
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: golang.org/x/image/draw (extern), image (stdlib)
// HINWEISE: Dekodierung selbst gehoert dem Bild-Loader, hier nur Konvertierung

package preprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// ============================================================================
// image.Image zu Tensor
// ============================================================================

// TensorFromImage konvertiert ein dekodiertes Bild zu einem rohen CHW-Tensor.
// Die Werte liegen unveraendert im Bereich [0, 255], der Alpha-Kanal entfaellt.
func TensorFromImage(img image.Image) *Tensor {
	rgba := toRGBA(img)
	bounds := rgba.Bounds()
	h := bounds.Dy()
	w := bounds.Dx()
	planeSize := h * w

	data := make([]float32, 3*planeSize)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := rgba.At(x, y).RGBA()
			// RGBA gibt 16-bit Werte zurueck, auf 8-bit konvertieren
			data[idx] = float32(r >> 8)
			data[planeSize+idx] = float32(g >> 8)
			data[2*planeSize+idx] = float32(b >> 8)
			idx++
		}
	}

	return &Tensor{Data: data, Channels: 3, Height: h, Width: w}
}

// TensorsFromImages konvertiert eine Bild-Liste zu rohen CHW-Tensoren.
func TensorsFromImages(images []image.Image) []*Tensor {
	out := make([]*Tensor, len(images))
	for i, img := range images {
		out[i] = TensorFromImage(img)
	}
	return out
}

// toRGBA konvertiert ein beliebiges image.Image zu *image.RGBA
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// ============================================================================
// Tensor zu image.RGBA
// ============================================================================

// tensorToRGBA konvertiert einen rohen 3-Kanal-Tensor zu *image.RGBA.
// Werte werden gerundet und auf [0, 255] begrenzt, Alpha ist voll deckend.
func tensorToRGBA(t *Tensor) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	planeSize := t.Height * t.Width

	idx := 0
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			offset := rgba.PixOffset(x, y)
			rgba.Pix[offset] = clampToUint8(t.Data[idx])
			rgba.Pix[offset+1] = clampToUint8(t.Data[planeSize+idx])
			rgba.Pix[offset+2] = clampToUint8(t.Data[2*planeSize+idx])
			rgba.Pix[offset+3] = 255
			idx++
		}
	}

	return rgba
}

// clampToUint8 rundet einen float32-Wert und begrenzt ihn auf [0, 255].
func clampToUint8(v float32) uint8 {
	r := int(v + 0.5)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
