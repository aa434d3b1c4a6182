package stbox

// Topological and positional predicates (§4.2). Positional predicates
// degenerate to false whenever the dimension they test is absent from
// either box, mirroring the "mixing 2D/3D allowed only on common
// dimensions" rule: a predicate about a dimension neither box shares
// cannot be asserted true.

// Contains reports whether every dimension of o lies within b.
func (b STBox) Contains(o STBox) bool {
	if !b.compatibleWith(o) {
		return false
	}
	if b.HasX && o.HasX {
		if o.XMin < b.XMin || o.XMax > b.XMax || o.YMin < b.YMin || o.YMax > b.YMax {
			return false
		}
		if b.HasZ && o.HasZ && (o.ZMin < b.ZMin || o.ZMax > b.ZMax) {
			return false
		}
	}
	if b.HasT && o.HasT && !b.Period.Contains(o.Period) {
		return false
	}

	return true
}

// Contained is the mirror of Contains.
func (b STBox) Contained(o STBox) bool { return o.Contains(b) }

// Overlaps reports whether b and o share any point in every dimension both
// carry.
func (b STBox) Overlaps(o STBox) bool {
	if !b.compatibleWith(o) {
		return false
	}
	if b.HasX && o.HasX {
		if b.XMax < o.XMin || o.XMax < b.XMin || b.YMax < o.YMin || o.YMax < b.YMin {
			return false
		}
		if b.HasZ && o.HasZ && (b.ZMax < o.ZMin || o.ZMax < b.ZMin) {
			return false
		}
	}
	if b.HasT && o.HasT && !b.Period.Overlaps(o.Period) {
		return false
	}

	return true
}

// Same reports whether b and o carry the same dimensions (X, Z, T) with
// bound-for-bound equal extents in each.
func (b STBox) Same(o STBox) bool {
	if !b.compatibleWith(o) {
		return false
	}
	if b.HasX != o.HasX || b.HasT != o.HasT {
		return false
	}
	if b.HasX {
		if b.XMin != o.XMin || b.XMax != o.XMax || b.YMin != o.YMin || b.YMax != o.YMax {
			return false
		}
		if b.HasZ != o.HasZ {
			return false
		}
		if b.HasZ && (b.ZMin != o.ZMin || b.ZMax != o.ZMax) {
			return false
		}
	}
	if b.HasT && !b.Period.Equal(o.Period) {
		return false
	}

	return true
}

// Adjacent reports whether b and o touch on at least one dimension's
// boundary without overlapping in the interior.
func (b STBox) Adjacent(o STBox) bool {
	if b.Overlaps(o) {
		return false
	}
	if b.HasX && o.HasX && (b.XMax == o.XMin || o.XMax == b.XMin || b.YMax == o.YMin || o.YMax == b.YMin) {
		return true
	}
	if b.HasT && o.HasT && b.Period.Adjacent(o.Period) {
		return true
	}

	return false
}

// Left reports whether b lies strictly to the -X side of o.
func (b STBox) Left(o STBox) bool { return b.HasX && o.HasX && b.XMax < o.XMin }

// OverLeft reports whether b does not extend past o's +X bound.
func (b STBox) OverLeft(o STBox) bool { return b.HasX && o.HasX && b.XMax <= o.XMax }

// Right is the mirror of Left.
func (b STBox) Right(o STBox) bool { return o.Left(b) }

// OverRight reports whether b does not extend past o's -X bound.
func (b STBox) OverRight(o STBox) bool { return b.HasX && o.HasX && b.XMin >= o.XMin }

// Below reports whether b lies strictly to the -Y side of o.
func (b STBox) Below(o STBox) bool { return b.HasX && o.HasX && b.YMax < o.YMin }

// OverBelow reports whether b does not extend past o's +Y bound.
func (b STBox) OverBelow(o STBox) bool { return b.HasX && o.HasX && b.YMax <= o.YMax }

// Above is the mirror of Below.
func (b STBox) Above(o STBox) bool { return o.Below(b) }

// OverAbove reports whether b does not extend past o's -Y bound.
func (b STBox) OverAbove(o STBox) bool { return b.HasX && o.HasX && b.YMin >= o.YMin }

// Front reports whether b lies strictly to the -Z side of o.
func (b STBox) Front(o STBox) bool { return b.HasZ && o.HasZ && b.ZMax < o.ZMin }

// OverFront reports whether b does not extend past o's +Z bound.
func (b STBox) OverFront(o STBox) bool { return b.HasZ && o.HasZ && b.ZMax <= o.ZMax }

// Back is the mirror of Front.
func (b STBox) Back(o STBox) bool { return o.Front(b) }

// OverBack reports whether b does not extend past o's -Z bound.
func (b STBox) OverBack(o STBox) bool { return b.HasZ && o.HasZ && b.ZMin >= o.ZMin }

// Before reports whether b's period lies strictly before o's.
func (b STBox) Before(o STBox) bool { return b.HasT && o.HasT && b.Period.StrictlyBefore(o.Period) }

// OverBefore reports whether b's period does not extend past o's upper bound.
func (b STBox) OverBefore(o STBox) bool { return b.HasT && o.HasT && b.Period.OverlapBefore(o.Period) }

// After is the mirror of Before.
func (b STBox) After(o STBox) bool { return o.Before(b) }

// OverAfter reports whether b's period does not extend before o's lower bound.
func (b STBox) OverAfter(o STBox) bool { return b.HasT && o.HasT && b.Period.OverlapAfter(o.Period) }
