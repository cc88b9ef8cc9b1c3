package htree

// Hash returns the placement key for a name: a polynomial rolling hash
// h = (h<<5) + h + b, that is h*33 + b, over every byte left to right,
// starting from 0, with wrapping uint32 arithmetic and no finalization.
// Distinct names may collide.
func Hash(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = (h << 5) + h + uint32(name[i])
	}
	return h
}
