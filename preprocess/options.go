// MODUL: options
// ZWECK: Functional Options Pattern fuer die Pipeline-Konfiguration
// INPUT: Optionale Konfigurationsparameter
// OUTPUT: Veraenderte Config Struct
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Optionen werden auf DefaultConfig angewendet, danach validiert

package preprocess

// Option ist eine funktionale Option fuer Config.
type Option func(*Config)

// ============================================================================
// Functional Options - Builder-Funktionen
// ============================================================================

// WithResize aktiviert/deaktiviert das Resizing.
func WithResize(enabled bool) Option {
	return func(c *Config) {
		c.DoResize = enabled
	}
}

// WithShortestEdge setzt die Ziel-Laenge der kuerzeren Bildkante.
func WithShortestEdge(n int) Option {
	return func(c *Config) {
		c.ShortestEdge = n
	}
}

// WithSizeDivisor setzt den Dimensions-Divisor.
// 0 deaktiviert die Ausrichtung auf Vielfache.
func WithSizeDivisor(n int) Option {
	return func(c *Config) {
		c.SizeDivisor = n
	}
}

// WithResample setzt den Interpolationsfilter.
func WithResample(r Resample) Option {
	return func(c *Config) {
		c.Resample = r
	}
}

// WithRescale aktiviert/deaktiviert die Pixelwert-Skalierung.
func WithRescale(enabled bool) Option {
	return func(c *Config) {
		c.DoRescale = enabled
	}
}

// WithRescaleFactor setzt den Skalierungsfaktor.
func WithRescaleFactor(f float32) Option {
	return func(c *Config) {
		c.RescaleFactor = f
	}
}

// WithNormalize aktiviert/deaktiviert die Normalisierung.
func WithNormalize(enabled bool) Option {
	return func(c *Config) {
		c.DoNormalize = enabled
	}
}

// WithImageMean setzt die kanalweisen Mittelwerte.
// Ein einzelner Wert wird auf alle Kanaele gebroadcastet.
func WithImageMean(mean ...float32) Option {
	return func(c *Config) {
		c.ImageMean = mean
	}
}

// WithImageStd setzt die kanalweisen Standardabweichungen.
func WithImageStd(std ...float32) Option {
	return func(c *Config) {
		c.ImageStd = std
	}
}

// WithPad aktiviert/deaktiviert Padding und Masken-Erzeugung.
func WithPad(enabled bool) Option {
	return func(c *Config) {
		c.DoPad = enabled
	}
}

// WithReturnMode setzt den Ausgabemodus (Liste oder gestapelt).
func WithReturnMode(mode ReturnMode) Option {
	return func(c *Config) {
		c.ReturnMode = mode
	}
}

// ============================================================================
// Apply - Options auf Config anwenden
// ============================================================================

// Apply wendet alle Options auf die Config an.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}
