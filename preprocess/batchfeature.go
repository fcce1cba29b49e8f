// MODUL: batchfeature
// ZWECK: Benannte Ausgabe-Struktur der Pipeline mit Listen- und Stacked-Form
// INPUT: Verarbeitete Tensoren und Masken in Originalreihenfolge
// OUTPUT: BatchFeature mit pixel_values und optional pixel_mask
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Stacked-Felder sind nur bei ReturnStacked gesetzt

package preprocess

// Schluessel der benannten Modell-Eingaben.
const (
	PixelValuesKey = "pixel_values"
	PixelMaskKey   = "pixel_mask"
)

// ModelInputNames listet die Eingabe-Namen die ein Vision-Modell erwartet.
var ModelInputNames = []string{PixelValuesKey, PixelMaskKey}

// ============================================================================
// BatchFeature - Pipeline-Ausgabe
// ============================================================================

// BatchFeature buendelt die benannten Ausgaben der Pipeline.
// PixelValues ist immer gesetzt. PixelMask nur wenn Padding aktiv war.
// StackedValues/StackedMask sind nur im ReturnStacked-Modus gesetzt
// (bei nicht-leerem Batch).
type BatchFeature struct {
	PixelValues   []*Tensor
	PixelMask     []*Mask
	StackedValues *BatchTensor
	StackedMask   *MaskBatch
}

// Len gibt die Anzahl der Bilder im Batch zurueck.
func (b *BatchFeature) Len() int {
	return len(b.PixelValues)
}

// Data gibt die Ausgaben als benannte Map zurueck.
// Im Stacked-Modus enthalten die Eintraege die gestapelten Strukturen,
// sonst die Listen. pixel_mask fehlt wenn kein Padding lief.
func (b *BatchFeature) Data() map[string]any {
	data := make(map[string]any)

	if b.StackedValues != nil {
		data[PixelValuesKey] = b.StackedValues
	} else {
		data[PixelValuesKey] = b.PixelValues
	}

	if b.StackedMask != nil {
		data[PixelMaskKey] = b.StackedMask
	} else if b.PixelMask != nil {
		data[PixelMaskKey] = b.PixelMask
	}

	return data
}

// ============================================================================
// Batch-Zusammenbau
// ============================================================================

// assembleBatch verpackt die Ergebnisse in ein BatchFeature und stapelt
// sie bei Bedarf. masks ist nil wenn kein Padding lief.
func assembleBatch(values []*Tensor, masks []*Mask, mode ReturnMode) (*BatchFeature, error) {
	feature := &BatchFeature{PixelValues: values, PixelMask: masks}

	if mode != ReturnStacked || len(values) == 0 {
		return feature, nil
	}

	stacked, err := StackTensors(values)
	if err != nil {
		return nil, err
	}
	feature.StackedValues = stacked

	if masks != nil {
		stackedMask, err := StackMasks(masks)
		if err != nil {
			return nil, err
		}
		feature.StackedMask = stackedMask
	}

	return feature, nil
}
