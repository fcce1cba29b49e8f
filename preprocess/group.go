// MODUL: group
// ZWECK: Gruppierung von Bildern nach Form fuer batchweise Verarbeitung
// INPUT: Geordnete Tensor-Liste mit beliebigen Formen
// OUTPUT: Map von Form zu Teil-Batch plus Index zur Reihenfolge-Wiederherstellung
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Der Index bildet Originalposition auf (Form, Position-in-Gruppe) ab

package preprocess

// shapeKey identifiziert eine Bildform (Channels, Height, Width).
type shapeKey struct {
	channels int
	height   int
	width    int
}

// groupIndex merkt sich fuer eine Originalposition die Gruppe und die
// Position innerhalb der Gruppe.
type groupIndex struct {
	key shapeKey
	pos int
}

// groupByShape partitioniert den Batch in Gruppen identischer Form.
// Der zurueckgegebene Index stellt die exakte Originalreihenfolge wieder her:
// index[i] verweist fuer das i-te Eingabebild auf seine Gruppe und Position.
// Leere Eingabe ergibt leere Ausgabe.
func groupByShape(images []*Tensor) (map[shapeKey][]*Tensor, []groupIndex) {
	groups := make(map[shapeKey][]*Tensor)
	index := make([]groupIndex, len(images))

	for i, t := range images {
		key := shapeKey{channels: t.Channels, height: t.Height, width: t.Width}
		index[i] = groupIndex{key: key, pos: len(groups[key])}
		groups[key] = append(groups[key], t)
	}

	return groups, index
}

// reorderTensors stellt aus verarbeiteten Gruppen die Originalreihenfolge
// wieder her. Die Gruppen muessen positionsgleich zu groupByShape sein,
// auch wenn sich die Form der Tensoren veraendert hat.
func reorderTensors(groups map[shapeKey][]*Tensor, index []groupIndex) []*Tensor {
	out := make([]*Tensor, len(index))
	for i, ref := range index {
		out[i] = groups[ref.key][ref.pos]
	}
	return out
}
