package walls

import "github.com/katalvlaran/mirrorpath/geom"

// Near selects the walls of all whose distance to the source–receiver
// segment srcRcv is strictly below distance. Candidates come from an
// envelope query on index (the segment envelope grown by distance) and are
// then checked exactly.
//
// The returned Slice keeps ascending catalogue order; ids[i] is the index in
// all of near[i].
func Near(all Catalogue, index Index, srcRcv geom.Segment, distance float64) (near Slice, ids []int, err error) {
	if all == nil || index == nil {
		return nil, nil, ErrNilCatalogue
	}

	for _, id := range index.Query(srcRcv.Envelope().Expand(distance)) {
		if id < 0 || id >= all.Len() {
			continue
		}
		w := all.At(id)
		if w.Segment.Distance(srcRcv) < distance {
			near = append(near, w)
			ids = append(ids, id)
		}
	}

	return near, ids, nil
}
