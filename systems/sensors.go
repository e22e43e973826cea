package systems

import (
	"github.com/solarlune/resolv"
)

// overlapping returns the objects carrying tag whose boxes overlap obj's box
// grown downward by grow units. The space check narrows the candidates to
// nearby cells; the box test makes the answer exact.
func overlapping(obj *resolv.Object, grow float64, tag string) []*resolv.Object {
	check := obj.Check(0, grow, tag)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, o := range check.Objects {
		if boxesOverlap(obj.X, obj.Y, obj.W, obj.H+grow, o) {
			hits = append(hits, o)
		}
	}
	return hits
}

// touches reports whether obj's box, grown downward by grow, overlaps any
// object carrying tag.
func touches(obj *resolv.Object, grow float64, tag string) bool {
	return len(overlapping(obj, grow, tag)) > 0
}

func boxesOverlap(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && x+w > o.X && y < o.Y+o.H && y+h > o.Y
}
