// MODUL: pad
// ZWECK: Padding auf Batch-Maximalgroesse mit Pixel-Masken-Erzeugung
// INPUT: Batch verarbeiteter Tensoren mit moeglicherweise verschiedenen Groessen
// OUTPUT: Gepaddte Tensoren plus Masken (1 = Originalinhalt, 0 = Padding)
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Padding fuellt unten und rechts mit 0

package preprocess

// maxHeightWidth berechnet die maximale Hoehe und Breite ueber den Batch.
func maxHeightWidth(batch []*Tensor) (int, int) {
	maxH, maxW := 0, 0
	for _, t := range batch {
		if t.Height > maxH {
			maxH = t.Height
		}
		if t.Width > maxW {
			maxW = t.Width
		}
	}
	return maxH, maxW
}

// padTensor padded ein Bild unten/rechts auf (maxH, maxW) und erzeugt die
// zugehoerige Pixel-Maske. Hat das Bild bereits die Zielgroesse, wird es
// unveraendert uebernommen und die Maske ist komplett 1.
func padTensor(t *Tensor, maxH, maxW int) (*Tensor, *Mask) {
	if t.Height == maxH && t.Width == maxW {
		return t, NewOnesMask(maxH, maxW)
	}

	padded := NewZeroTensor(t.Channels, maxH, maxW)
	srcPlane := t.Height * t.Width
	dstPlane := maxH * maxW

	// Zeilenweise in den Null-Tensor kopieren, Rest bleibt 0
	for c := 0; c < t.Channels; c++ {
		for y := 0; y < t.Height; y++ {
			src := t.Data[c*srcPlane+y*t.Width : c*srcPlane+(y+1)*t.Width]
			dst := padded.Data[c*dstPlane+y*maxW : c*dstPlane+y*maxW+t.Width]
			copy(dst, src)
		}
	}

	// Maske: Null-Vorlage, Original-Bereich auf 1 setzen
	mask := NewZeroMask(maxH, maxW)
	for y := 0; y < t.Height; y++ {
		row := mask.Data[y*maxW : y*maxW+t.Width]
		for x := range row {
			row[x] = 1
		}
	}

	return padded, mask
}

// padBatch padded alle Bilder auf die Batch-Maximalgroesse und baut die
// zugehoerigen Masken.
func padBatch(batch []*Tensor) ([]*Tensor, []*Mask) {
	if len(batch) == 0 {
		return []*Tensor{}, []*Mask{}
	}

	maxH, maxW := maxHeightWidth(batch)
	padded := make([]*Tensor, len(batch))
	masks := make([]*Mask, len(batch))

	for i, t := range batch {
		padded[i], masks[i] = padTensor(t, maxH, maxW)
	}

	return padded, masks
}
