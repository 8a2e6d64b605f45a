package orbit

// Classification is the result of classifying one connected induced
// subgraph on k vertices: its graphlet id and, per vertex, its orbit id.
type Classification struct {
	Graphlet int
	Orbits   []int // length k, indexed by the same vertex order used to build the mask
}

// Classify builds the mask for k labelled vertices via adjacent, and
// returns its Classification if the induced subgraph is connected. The
// second return value is false for disconnected inputs, matching the
// contract that orbit_of/graphlet_id are undefined on disconnected graphs.
func Classify(k int, adjacent func(i, j int) bool) (Classification, bool) {
	mask := MaskOf(k, adjacent)
	if !Connected(mask, k) {
		return Classification{}, false
	}
	t := tables[k]
	return Classification{
		Graphlet: t.graphlet[mask],
		Orbits:   t.vertexOrb[mask],
	}, true
}
