package nav

import "strconv"

// NodeID derives a stable identity from a node's label and link target.
// It is pure and deterministic: the same label/href pair always yields the
// same id, regardless of where the node sits in the tree. Distinct pairs
// collide only with hash probability; ids are display identities, not
// uniqueness keys.
func NodeID(label, href string) string {
	var h int32
	for _, r := range label + href {
		h = 31*h + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
