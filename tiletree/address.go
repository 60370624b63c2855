package tiletree

// Address is the root-to-node sequence of child indices. The root's
// address is the empty sequence.
type Address []uint32

// Child returns the address of this node's child i.
func (a Address) Child(i uint32) Address {
	out := make(Address, len(a)+1)
	copy(out, a)
	out[len(a)] = i
	return out
}

// Parent returns the address of this node's parent, and false if a is the
// root address.
func (a Address) Parent() (Address, bool) {
	if len(a) == 0 {
		return nil, false
	}
	return a[:len(a)-1], true
}

// IsDescendantOf reports whether a is a proper descendant of other —
// i.e. other is a strict prefix of a.
func (a Address) IsDescendantOf(other Address) bool {
	if len(a) <= len(other) {
		return false
	}
	return isPrefix(other, a)
}

// IsDescendantOfOrEqual reports whether other is a prefix of a (strict
// descendance or equality).
func (a Address) IsDescendantOfOrEqual(other Address) bool {
	return isPrefix(other, a)
}

func isPrefix(prefix, a Address) bool {
	if len(prefix) > len(a) {
		return false
	}
	for i, v := range prefix {
		if a[i] != v {
			return false
		}
	}
	return true
}

// Equal reports whether a and b denote the same address.
func (a Address) Equal(b Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
