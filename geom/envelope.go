package geom

import "math"

// IsEmpty reports whether e contains no point.
func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// IsFinite reports whether every bound of e is a finite number.
func (e Envelope) IsFinite() bool {
	for _, v := range [...]float64{e.MinX, e.MinY, e.MaxX, e.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Expand grows e by d on every side.
func (e Envelope) Expand(d float64) Envelope {
	if e.IsEmpty() {
		return e
	}

	return Envelope{MinX: e.MinX - d, MinY: e.MinY - d, MaxX: e.MaxX + d, MaxY: e.MaxY + d}
}
