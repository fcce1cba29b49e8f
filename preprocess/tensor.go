// MODUL: tensor
// ZWECK: Tensor-Datentypen fuer die Preprocessing-Pipeline (CHW/NCHW Layout)
// INPUT: float32-Rohdaten mit Dimensionsangaben
// OUTPUT: Tensor, BatchTensor, Mask, MaskBatch Strukturen
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: x448/float16 (FP16-Export)
// HINWEISE: Bilddaten liegen Channel-First (CHW) im Speicher, Masken als int32

package preprocess

import (
	"errors"
	"fmt"

	"github.com/x448/float16"
)

// ============================================================================
// Fehler-Definitionen fuer Tensoren
// ============================================================================

var (
	// ErrNilTensor wird zurueckgegeben wenn ein Batch einen nil-Eintrag enthaelt
	ErrNilTensor = errors.New("preprocess: nil tensor")

	// ErrInvalidShape wird zurueckgegeben bei nicht-positiven Dimensionen
	ErrInvalidShape = errors.New("preprocess: invalid tensor shape")

	// ErrDataLength wird zurueckgegeben wenn Datenlaenge nicht zur Form passt
	ErrDataLength = errors.New("preprocess: data length does not match shape")

	// ErrChannelMismatch wird zurueckgegeben bei uneinheitlicher Kanalzahl im Batch
	ErrChannelMismatch = errors.New("preprocess: inconsistent channel count in batch")

	// ErrShapeMismatch wird zurueckgegeben wenn Tensoren zum Stapeln
	// unterschiedliche Formen haben
	ErrShapeMismatch = errors.New("preprocess: tensors must share one shape for stacking")

	// ErrEmptyBatch wird zurueckgegeben wenn ein leerer Batch gestapelt werden soll
	ErrEmptyBatch = errors.New("preprocess: empty batch")
)

// ============================================================================
// Tensor - Einzelbild im CHW Layout
// ============================================================================

// Tensor ist ein Einzelbild als float32-Tensor im CHW Layout.
// Data hat die Laenge Channels*Height*Width, Kanal-Ebenen liegen hintereinander.
type Tensor struct {
	Data     []float32
	Channels int
	Height   int
	Width    int
}

// NewTensor erstellt einen Tensor und validiert Form und Datenlaenge.
func NewTensor(data []float32, channels, height, width int) (*Tensor, error) {
	t := &Tensor{Data: data, Channels: channels, Height: height, Width: width}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewZeroTensor erstellt einen mit Nullen gefuellten Tensor.
func NewZeroTensor(channels, height, width int) *Tensor {
	return &Tensor{
		Data:     make([]float32, channels*height*width),
		Channels: channels,
		Height:   height,
		Width:    width,
	}
}

// Validate prueft Dimensionen und Datenlaenge.
func (t *Tensor) Validate() error {
	if t == nil {
		return ErrNilTensor
	}
	if t.Channels <= 0 || t.Height <= 0 || t.Width <= 0 {
		return fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidShape, t.Channels, t.Height, t.Width)
	}
	if len(t.Data) != t.Channels*t.Height*t.Width {
		return fmt.Errorf("%w: laenge %d, erwartet %d",
			ErrDataLength, len(t.Data), t.Channels*t.Height*t.Width)
	}
	return nil
}

// Shape gibt die Form als (Channels, Height, Width) zurueck.
func (t *Tensor) Shape() (int, int, int) {
	return t.Channels, t.Height, t.Width
}

// At liest den Wert an Position (Kanal, Zeile, Spalte).
func (t *Tensor) At(c, y, x int) float32 {
	return t.Data[c*t.Height*t.Width+y*t.Width+x]
}

// Set schreibt den Wert an Position (Kanal, Zeile, Spalte).
func (t *Tensor) Set(c, y, x int, v float32) {
	t.Data[c*t.Height*t.Width+y*t.Width+x] = v
}

// Clone erstellt eine tiefe Kopie des Tensors.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.Data))
	copy(data, t.Data)
	return &Tensor{Data: data, Channels: t.Channels, Height: t.Height, Width: t.Width}
}

// Float16Data konvertiert die Tensor-Daten zu FP16.
// Nuetzlich fuer Modelle die Half-Precision-Eingaben erwarten.
func (t *Tensor) Float16Data() []float16.Float16 {
	u16s := make([]float16.Float16, len(t.Data))
	for i := range u16s {
		u16s[i] = float16.Fromfloat32(t.Data[i])
	}
	return u16s
}

// ============================================================================
// BatchTensor - Gestapelter Batch im NCHW Layout
// ============================================================================

// BatchTensor ist ein gestapelter Bild-Batch im NCHW Layout.
// Alle Bilder teilen eine Form, Data hat die Laenge N*Channels*Height*Width.
type BatchTensor struct {
	Data     []float32
	N        int
	Channels int
	Height   int
	Width    int
}

// StackTensors stapelt gleichfoermige Tensoren zu einem NCHW BatchTensor.
// Alle Tensoren muessen exakt dieselbe Form haben.
func StackTensors(batch []*Tensor) (*BatchTensor, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}

	c, h, w := batch[0].Shape()
	per := c * h * w
	out := make([]float32, per*len(batch))

	for i, t := range batch {
		tc, th, tw := t.Shape()
		if tc != c || th != h || tw != w {
			return nil, fmt.Errorf("%w: bild %d hat (%d, %d, %d), erwartet (%d, %d, %d)",
				ErrShapeMismatch, i, tc, th, tw, c, h, w)
		}
		copy(out[i*per:(i+1)*per], t.Data)
	}

	return &BatchTensor{Data: out, N: len(batch), Channels: c, Height: h, Width: w}, nil
}

// Image gibt das i-te Bild des Batches als Tensor-Kopie zurueck.
func (b *BatchTensor) Image(i int) *Tensor {
	per := b.Channels * b.Height * b.Width
	data := make([]float32, per)
	copy(data, b.Data[i*per:(i+1)*per])
	return &Tensor{Data: data, Channels: b.Channels, Height: b.Height, Width: b.Width}
}

// Float16Data konvertiert die Batch-Daten zu FP16.
func (b *BatchTensor) Float16Data() []float16.Float16 {
	u16s := make([]float16.Float16, len(b.Data))
	for i := range u16s {
		u16s[i] = float16.Fromfloat32(b.Data[i])
	}
	return u16s
}

// ============================================================================
// Mask - Pixel-Maske fuer gepaddte Bilder
// ============================================================================

// Mask markiert pro Pixel ob dort Originalinhalt (1) oder Padding (0) liegt.
type Mask struct {
	Data   []int32
	Height int
	Width  int
}

// NewOnesMask erstellt eine vollstaendig mit 1 gefuellte Maske.
func NewOnesMask(height, width int) *Mask {
	data := make([]int32, height*width)
	for i := range data {
		data[i] = 1
	}
	return &Mask{Data: data, Height: height, Width: width}
}

// NewZeroMask erstellt eine vollstaendig mit 0 gefuellte Maske.
func NewZeroMask(height, width int) *Mask {
	return &Mask{Data: make([]int32, height*width), Height: height, Width: width}
}

// At liest den Maskenwert an Position (Zeile, Spalte).
func (m *Mask) At(y, x int) int32 {
	return m.Data[y*m.Width+x]
}

// ============================================================================
// MaskBatch - Gestapelte Masken im NHW Layout
// ============================================================================

// MaskBatch ist ein gestapelter Masken-Batch im NHW Layout.
type MaskBatch struct {
	Data   []int32
	N      int
	Height int
	Width  int
}

// StackMasks stapelt gleichfoermige Masken zu einem NHW MaskBatch.
func StackMasks(masks []*Mask) (*MaskBatch, error) {
	if len(masks) == 0 {
		return nil, ErrEmptyBatch
	}

	h, w := masks[0].Height, masks[0].Width
	per := h * w
	out := make([]int32, per*len(masks))

	for i, m := range masks {
		if m.Height != h || m.Width != w {
			return nil, fmt.Errorf("%w: maske %d hat (%d, %d), erwartet (%d, %d)",
				ErrShapeMismatch, i, m.Height, m.Width, h, w)
		}
		copy(out[i*per:(i+1)*per], m.Data)
	}

	return &MaskBatch{Data: out, N: len(masks), Height: h, Width: w}, nil
}

// ============================================================================
// Batch-Validierung
// ============================================================================

// validateBatch prueft jeden Tensor und die Kanal-Konsistenz des Batches.
// Schlaegt vor jeder Verarbeitung fehl, es werden keine Teilergebnisse erzeugt.
func validateBatch(batch []*Tensor) error {
	if len(batch) == 0 {
		return nil
	}

	for i, t := range batch {
		if t == nil {
			return fmt.Errorf("bild %d: %w", i, ErrNilTensor)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("bild %d: %w", i, err)
		}
	}

	channels := batch[0].Channels
	for i, t := range batch[1:] {
		if t.Channels != channels {
			return fmt.Errorf("bild %d: %w: %d kanaele, erwartet %d",
				i+1, ErrChannelMismatch, t.Channels, channels)
		}
	}

	return nil
}
