// MODUL: processor
// ZWECK: Orchestrierung der Preprocessing-Pipeline fuer Vision-Modell-Eingaben
// INPUT: Batch roher CHW-Tensoren oder dekodierter Bilder
// OUTPUT: BatchFeature mit pixel_values und optional pixel_mask
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: golang.org/x/image/draw (via resize), image (stdlib)
// HINWEISE: Reine synchrone Funktion, Konfiguration ist nach Erstellung fixiert

package preprocess

import (
	"fmt"
	"image"
)

// ============================================================================
// Processor - Konfigurierte Pipeline
// ============================================================================

// Processor fuehrt die Preprocessing-Pipeline mit fester Konfiguration aus.
// Ein Processor haelt keinen veraenderlichen Zustand und kann von mehreren
// Goroutinen gleichzeitig verwendet werden, solange die Eingabe-Batches
// unabhaengig sind.
type Processor struct {
	config Config
}

// NewProcessor erstellt einen Processor aus Defaults plus Options.
func NewProcessor(opts ...Option) (*Processor, error) {
	config := DefaultConfig()
	config.Apply(opts...)
	return NewProcessorFromConfig(config)
}

// NewProcessorFromConfig erstellt einen Processor aus einer fertigen Config.
// Die Config wird validiert und kopiert, nachtraegliche Aenderungen am
// Original wirken sich nicht auf den Processor aus.
func NewProcessorFromConfig(config Config) (*Processor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.ImageMean = cloneFloats(config.ImageMean)
	config.ImageStd = cloneFloats(config.ImageStd)

	return &Processor{config: config}, nil
}

// Config gibt eine Kopie der Konfiguration zurueck.
func (p *Processor) Config() Config {
	config := p.config
	config.ImageMean = cloneFloats(config.ImageMean)
	config.ImageStd = cloneFloats(config.ImageStd)
	return config
}

// ============================================================================
// Process - Pipeline-Durchlauf
// ============================================================================

// Process verarbeitet einen Batch roher CHW-Tensoren zu Modell-Eingaben.
// Ablauf: Validierung, Gruppierung nach Form, aspektkorrektes Resizing,
// Neugruppierung, fusioniertes Rescale/Normalize, Padding mit Masken,
// Wiederherstellung der Originalreihenfolge, Zusammenbau.
//
// Die Ausgabe teilt keinen Speicher mit der Eingabe. Bei einem Fehler wird
// kein Teilergebnis zurueckgegeben.
func (p *Processor) Process(images []*Tensor) (*BatchFeature, error) {
	if len(images) == 0 {
		empty := &BatchFeature{PixelValues: []*Tensor{}}
		if p.config.DoPad {
			empty.PixelMask = []*Mask{}
		}
		return empty, nil
	}

	if err := validateBatch(images); err != nil {
		return nil, err
	}
	if p.config.DoResize && images[0].Channels != 3 {
		return nil, fmt.Errorf("%w: %d kanaele", ErrUnsupportedChannels, images[0].Channels)
	}

	// Nach Form gruppieren fuer batchweises Resizing
	groups, index := groupByShape(images)
	resizedGroups := make(map[shapeKey][]*Tensor, len(groups))

	for key, group := range groups {
		if !p.config.DoResize {
			resizedGroups[key] = group
			continue
		}
		resized, err := resizeGroup(group, p.config.ShortestEdge, p.config.SizeDivisor, p.config.Resample)
		if err != nil {
			return nil, err
		}
		resizedGroups[key] = resized
	}

	resized := reorderTensors(resizedGroups, index)

	// Nach neuer Form gruppieren fuer Rescale/Normalize
	groups, index = groupByShape(resized)
	processedGroups := make(map[shapeKey][]*Tensor, len(groups))

	for key, group := range groups {
		processed, err := rescaleAndNormalize(group,
			p.config.DoRescale, p.config.RescaleFactor,
			p.config.DoNormalize, p.config.ImageMean, p.config.ImageStd)
		if err != nil {
			return nil, err
		}
		processedGroups[key] = processed
	}

	processed := reorderTensors(processedGroups, index)

	// Padding und Masken
	var masks []*Mask
	if p.config.DoPad {
		processed, masks = padBatch(processed)
	}

	return assembleBatch(processed, masks, p.config.ReturnMode)
}

// ProcessImages konvertiert dekodierte Bilder zu rohen Tensoren und
// verarbeitet sie mit Process.
func (p *Processor) ProcessImages(images []image.Image) (*BatchFeature, error) {
	return p.Process(TensorsFromImages(images))
}
