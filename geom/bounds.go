package geom

// Bounds is an axis-aligned bounding box: Min.X <= Max.X, Min.Y <= Max.Y.
type Bounds struct {
	Min, Max Vector
}

// FromVertices builds the tight AABB around a non-empty vertex list.
func FromVertices(vertices []Vector) Bounds {
	min, max := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return Bounds{Min: min, Max: max}
}

// Translate shifts both corners by delta.
func (b Bounds) Translate(delta Vector) Bounds {
	return Bounds{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// Overlaps implements the symmetric AABB overlap test. spec.md §9 notes
// that one revision of the source conditioned this on a stray uppercase
// "X" on one side (an apparent typo); this is the corrected, symmetric
// form spec.md §4.1 specifies.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.Max.X < o.Min.X || b.Min.X > o.Max.X {
		return false
	}
	if b.Max.Y < o.Min.Y || b.Min.Y > o.Max.Y {
		return false
	}
	return true
}
