// MODUL: config
// ZWECK: Unveraenderliche Pipeline-Konfiguration mit Defaults, ENV-Laden und Validierung
// INPUT: Environment-Variablen, optional manuelle Konfiguration
// OUTPUT: Config Struct mit validierter Konfiguration
// NEBENEFFEKTE: Liest Environment-Variablen bei LoadConfigFromEnv
// ABHAENGIGKEITEN: golang.org/x/image/draw (Interpolatoren), os, strconv
// HINWEISE: Nutzt ENV-Variablen mit VISIONPREP_ Prefix, SizeDivisor 0 = deaktiviert

package preprocess

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/image/draw"
)

// ============================================================================
// Normalisierungs-Konstanten
// ============================================================================

// Standard-Normalisierungswerte fuer verschiedene Modelle
var (
	// ImageNet Default (ResNet, EfficientNet, etc.)
	ImageNetMean = []float32{0.485, 0.456, 0.406}
	ImageNetStd  = []float32{0.229, 0.224, 0.225}

	// CLIP Default
	ClipMean = []float32{0.48145466, 0.4578275, 0.40821073}
	ClipStd  = []float32{0.26862954, 0.26130258, 0.27577711}
)

// DefaultRescaleFactor skaliert 8-bit Pixelwerte auf [0, 1].
const DefaultRescaleFactor = float32(1.0 / 255.0)

// ============================================================================
// Resample - Interpolationsfilter
// ============================================================================

// Resample waehlt den Interpolationsfilter fuer das Resizing.
type Resample int

const (
	// ResampleBicubic ist der Default (CatmullRom, hochwertiges Bicubic)
	ResampleBicubic Resample = iota

	// ResampleBilinear interpoliert linear zwischen Nachbarpixeln
	ResampleBilinear

	// ResampleNearest verwendet den naechsten Nachbarpixel
	ResampleNearest
)

// String gibt den Filter-Namen zurueck.
func (r Resample) String() string {
	switch r {
	case ResampleBicubic:
		return "bicubic"
	case ResampleBilinear:
		return "bilinear"
	case ResampleNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// interpolator gibt den x/image Interpolator fuer den Filter zurueck.
func (r Resample) interpolator() draw.Interpolator {
	switch r {
	case ResampleBilinear:
		return draw.BiLinear
	case ResampleNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// ParseResample parst einen Filter-Namen zu Resample.
func ParseResample(s string) (Resample, error) {
	switch s {
	case "bicubic":
		return ResampleBicubic, nil
	case "bilinear":
		return ResampleBilinear, nil
	case "nearest":
		return ResampleNearest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidResample, s)
	}
}

// ============================================================================
// ReturnMode - Ausgabeform des Batches
// ============================================================================

// ReturnMode steuert ob die Ausgabe als Liste oder gestapelt erfolgt.
type ReturnMode string

const (
	// ReturnNone gibt die Bilder als Liste einzelner Tensoren zurueck
	ReturnNone ReturnMode = "none"

	// ReturnStacked stapelt die Ausgabe zu einem NCHW BatchTensor
	ReturnStacked ReturnMode = "stacked"
)

// ============================================================================
// Fehler-Definitionen fuer Config
// ============================================================================

var (
	// ErrInvalidShortestEdge wird zurueckgegeben wenn die Zielkante <= 0 ist
	ErrInvalidShortestEdge = errors.New("preprocess: shortest edge must be > 0")

	// ErrInvalidSizeDivisor wird zurueckgegeben bei negativem Divisor
	ErrInvalidSizeDivisor = errors.New("preprocess: size divisor must be >= 0")

	// ErrInvalidRescaleFactor wird zurueckgegeben bei Faktor <= 0
	ErrInvalidRescaleFactor = errors.New("preprocess: rescale factor must be > 0")

	// ErrInvalidNormalization wird zurueckgegeben bei unbrauchbaren mean/std Werten
	ErrInvalidNormalization = errors.New("preprocess: invalid normalization parameters")

	// ErrInvalidResample wird zurueckgegeben bei unbekanntem Interpolationsfilter
	ErrInvalidResample = errors.New("preprocess: invalid resample filter")

	// ErrUnsupportedReturnMode wird zurueckgegeben bei unbekanntem Ausgabemodus
	ErrUnsupportedReturnMode = errors.New("preprocess: unsupported return mode")
)

// ============================================================================
// Konstanten fuer Environment-Variablen
// ============================================================================

const (
	// EnvShortestEdge setzt die Ziel-Kantenlaenge
	EnvShortestEdge = "VISIONPREP_SHORTEST_EDGE"

	// EnvSizeDivisor setzt den Dimensions-Divisor (0 deaktiviert)
	EnvSizeDivisor = "VISIONPREP_SIZE_DIVISOR"

	// EnvResample setzt den Interpolationsfilter (bicubic|bilinear|nearest)
	EnvResample = "VISIONPREP_RESAMPLE"

	// EnvDoPad aktiviert/deaktiviert das Padding
	EnvDoPad = "VISIONPREP_DO_PAD"

	// EnvReturnMode setzt den Ausgabemodus (none|stacked)
	EnvReturnMode = "VISIONPREP_RETURN_MODE"
)

// ============================================================================
// Config - Zentrale Pipeline-Konfiguration
// ============================================================================

// Config enthaelt die vollstaendige, waehrend eines Laufs unveraenderliche
// Konfiguration der Preprocessing-Pipeline.
type Config struct {
	// DoResize aktiviert das aspektkorrekte Resizing
	DoResize bool

	// ShortestEdge ist die Ziel-Laenge der kuerzeren Bildkante
	ShortestEdge int

	// SizeDivisor erzwingt Ausgabedimensionen als Vielfache dieses Werts.
	// 0 deaktiviert die Ausrichtung.
	SizeDivisor int

	// Resample ist der Interpolationsfilter fuer das Resizing
	Resample Resample

	// DoRescale aktiviert die lineare Pixelwert-Skalierung
	DoRescale bool

	// RescaleFactor ist der Skalierungsfaktor (Default 1/255)
	RescaleFactor float32

	// DoNormalize aktiviert die kanalweise Normalisierung
	DoNormalize bool

	// ImageMean sind die kanalweisen Mittelwerte (Skalar wird gebroadcastet)
	ImageMean []float32

	// ImageStd sind die kanalweisen Standardabweichungen
	ImageStd []float32

	// DoPad aktiviert Padding auf Batch-Maximalgroesse plus Pixel-Masken
	DoPad bool

	// ReturnMode steuert Listen- oder Stacked-Ausgabe
	ReturnMode ReturnMode
}

// ============================================================================
// DefaultConfig - Standard-Konfiguration
// ============================================================================

// DefaultConfig gibt die Standard-Konfiguration zurueck.
// - Resize auf kuerzeste Kante 384, Divisor 32, Bicubic
// - Rescale 1/255 plus ImageNet-Normalisierung
// - Padding mit Pixel-Masken, Listen-Ausgabe
func DefaultConfig() Config {
	return Config{
		DoResize:      true,
		ShortestEdge:  384,
		SizeDivisor:   32,
		Resample:      ResampleBicubic,
		DoRescale:     true,
		RescaleFactor: DefaultRescaleFactor,
		DoNormalize:   true,
		ImageMean:     cloneFloats(ImageNetMean),
		ImageStd:      cloneFloats(ImageNetStd),
		DoPad:         true,
		ReturnMode:    ReturnNone,
	}
}

// ============================================================================
// LoadConfigFromEnv - Konfiguration aus Environment laden
// ============================================================================

// LoadConfigFromEnv laedt die Konfiguration aus Environment-Variablen.
// Nicht gesetzte Variablen verwenden die Standardwerte.
func LoadConfigFromEnv() Config {
	config := DefaultConfig()

	if edge := os.Getenv(EnvShortestEdge); edge != "" {
		if n, err := strconv.Atoi(edge); err == nil && n > 0 {
			config.ShortestEdge = n
		}
	}

	if divisor := os.Getenv(EnvSizeDivisor); divisor != "" {
		if n, err := strconv.Atoi(divisor); err == nil && n >= 0 {
			config.SizeDivisor = n
		}
	}

	if resample := os.Getenv(EnvResample); resample != "" {
		if r, err := ParseResample(resample); err == nil {
			config.Resample = r
		}
	}

	if pad := os.Getenv(EnvDoPad); pad != "" {
		config.DoPad = parseBool(pad, true)
	}

	if mode := os.Getenv(EnvReturnMode); mode != "" {
		config.ReturnMode = ReturnMode(mode)
	}

	return config
}

// ============================================================================
// Validate - Konfiguration validieren
// ============================================================================

// Validate prueft ob die Config konsistent und gueltig ist.
func (c *Config) Validate() error {
	if c.ShortestEdge <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidShortestEdge, c.ShortestEdge)
	}

	if c.SizeDivisor < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSizeDivisor, c.SizeDivisor)
	}

	switch c.Resample {
	case ResampleBicubic, ResampleBilinear, ResampleNearest:
		// gueltig
	default:
		return fmt.Errorf("%w: %d", ErrInvalidResample, int(c.Resample))
	}

	if c.DoRescale && c.RescaleFactor <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRescaleFactor, c.RescaleFactor)
	}

	if c.DoNormalize {
		if len(c.ImageMean) == 0 || len(c.ImageStd) == 0 {
			return fmt.Errorf("%w: mean/std duerfen nicht leer sein", ErrInvalidNormalization)
		}
		for _, s := range c.ImageStd {
			if s == 0 {
				return fmt.Errorf("%w: std enthaelt 0", ErrInvalidNormalization)
			}
		}
	}

	switch c.ReturnMode {
	case ReturnNone, ReturnStacked:
		// gueltig
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedReturnMode, string(c.ReturnMode))
	}

	return nil
}

// ============================================================================
// Hilfsfunktionen
// ============================================================================

// parseBool parst einen String als Boolean mit Fallback.
// Akzeptiert: "1", "true", "yes", "on" (case-insensitive) als true
func parseBool(s string, fallback bool) bool {
	switch s {
	case "1", "true", "True", "TRUE", "yes", "Yes", "YES", "on", "On", "ON":
		return true
	case "0", "false", "False", "FALSE", "no", "No", "NO", "off", "Off", "OFF":
		return false
	default:
		return fallback
	}
}

// cloneFloats kopiert einen float32-Slice.
func cloneFloats(s []float32) []float32 {
	if s == nil {
		return nil
	}
	out := make([]float32, len(s))
	copy(out, s)
	return out
}

// ============================================================================
// String - Debug-Ausgabe
// ============================================================================

// String gibt eine lesbare Darstellung der Konfiguration zurueck.
func (c *Config) String() string {
	return "Config{DoResize: " + strconv.FormatBool(c.DoResize) +
		", ShortestEdge: " + strconv.Itoa(c.ShortestEdge) +
		", SizeDivisor: " + strconv.Itoa(c.SizeDivisor) +
		", Resample: " + c.Resample.String() +
		", DoRescale: " + strconv.FormatBool(c.DoRescale) +
		", DoNormalize: " + strconv.FormatBool(c.DoNormalize) +
		", DoPad: " + strconv.FormatBool(c.DoPad) +
		", ReturnMode: " + string(c.ReturnMode) + "}"
}
