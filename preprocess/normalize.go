// MODUL: normalize
// ZWECK: Fusionierte Pixelwert-Skalierung und kanalweise Normalisierung
// INPUT: Batch formgleicher Tensoren, Faktor, mean/std
// OUTPUT: Neue Tensoren mit transformierten Werten
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Ein einzelner Durchlauf berechnet (v*faktor - mean) / std

package preprocess

import "fmt"

// ============================================================================
// Kanal-Parameter
// ============================================================================

// channelParams broadcastet mean/std Werte auf die Kanalzahl.
// Ein einzelner Wert gilt fuer alle Kanaele, sonst muss die Laenge passen.
func channelParams(vals []float32, channels int) ([]float32, error) {
	switch len(vals) {
	case channels:
		return vals, nil
	case 1:
		out := make([]float32, channels)
		for i := range out {
			out[i] = vals[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: laenge %d, erwartet 1 oder %d",
			ErrInvalidNormalization, len(vals), channels)
	}
}

// ============================================================================
// Fusionierte Transformation
// ============================================================================

// rescaleAndNormalize wendet Skalierung und Normalisierung in einem einzigen
// Durchlauf an. Die beiden linearen Schritte werden zu einer affinen
// Transformation pro Kanal zusammengefasst:
//
//	rescale+normalize: v*faktor/std - mean/std
//	nur rescale:       v*faktor
//	nur normalize:     (v - mean) / std
//
// Die Rueckgabe teilt nie Speicher mit der Eingabe, auch im
// Passthrough-Fall nicht.
func rescaleAndNormalize(batch []*Tensor, doRescale bool, factor float32, doNormalize bool, mean, std []float32) ([]*Tensor, error) {
	if len(batch) == 0 {
		return []*Tensor{}, nil
	}

	if !doRescale && !doNormalize {
		out := make([]*Tensor, len(batch))
		for i, t := range batch {
			out[i] = t.Clone()
		}
		return out, nil
	}

	channels := batch[0].Channels

	// Affine Parameter pro Kanal vorberechnen: out = v*scale + shift
	scale := make([]float32, channels)
	shift := make([]float32, channels)
	for c := range scale {
		scale[c] = 1
	}

	if doRescale {
		for c := range scale {
			scale[c] = factor
		}
	}

	if doNormalize {
		chMean, err := channelParams(mean, channels)
		if err != nil {
			return nil, err
		}
		chStd, err := channelParams(std, channels)
		if err != nil {
			return nil, err
		}
		for c := 0; c < channels; c++ {
			scale[c] /= chStd[c]
			shift[c] = -chMean[c] / chStd[c]
		}
	}

	out := make([]*Tensor, len(batch))
	for i, t := range batch {
		planeSize := t.Height * t.Width
		data := make([]float32, len(t.Data))
		for c := 0; c < channels; c++ {
			s, b := scale[c], shift[c]
			plane := t.Data[c*planeSize : (c+1)*planeSize]
			outPlane := data[c*planeSize : (c+1)*planeSize]
			for j, v := range plane {
				outPlane[j] = v*s + b
			}
		}
		out[i] = &Tensor{Data: data, Channels: t.Channels, Height: t.Height, Width: t.Width}
	}

	return out, nil
}
