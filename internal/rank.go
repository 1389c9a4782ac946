package internal

// Rank fixes a Publisher's position in the reactive DAG. Comparison is
// lexicographic except that a longer prefix-equal vector sorts before a
// shorter one — so a publisher created while running inside another
// publisher, whose rank extends its creator's, sorts strictly before its
// creator.
type Rank []int

// Less reports whether x sorts strictly before y.
func Less(x, y Rank) bool {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	for i := 0; i < n; i++ {
		if x[i] != y[i] {
			return x[i] < y[i]
		}
	}

	if len(x) == len(y) {
		return false
	}

	// prefix-equal: the longer vector is the newer, nested publisher and
	// sorts first.
	return len(x) > len(y)
}

// NewRank derives the rank of a publisher created right now, given the
// currently executing process (nil if none).
func NewRank(ctx *Context, current *Process) Rank {
	if current != nil {
		p := current.parent
		r := make(Rank, len(p.ranks)+1)
		copy(r, p.ranks)
		r[len(p.ranks)] = p.children
		p.children++
		return r
	}

	n := ctx.topLevel
	ctx.topLevel++
	return Rank{n}
}
