// Package merkle implements the balanced binary Merkle commitment (spec.md
// C3): singleton leaves, right-padded with 0_F to the next power of two,
// committed and opened through a single field-native sponge used both as
// the leaf-hash and the two-to-one inner hash.
package merkle

import (
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/rs"
)

// Tree is a committed Merkle tree. levels[0] holds the (padded, hashed)
// leaf layer; the last entry holds the single-element root layer.
type Tree struct {
	levels [][]field.Element
}

// Build pads leaves with 0_F to the next power of two, hashes each through
// the leaf-hash, and folds pairs upward through the two-to-one hash until a
// single root remains.
func Build(leaves []field.Element) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	padded := rs.PadToPowerOfTwo(leaves)

	leafLevel := make([]field.Element, len(padded))
	for i, l := range padded {
		leafLevel[i] = hashElements(l)
	}

	levels := [][]field.Element{leafLevel}
	cur := leafLevel
	for len(cur) > 1 {
		next := make([]field.Element, len(cur)/2)
		for i := range next {
			next[i] = hashElements(cur[2*i], cur[2*i+1])
		}
		levels = append(levels, next)
		cur = next
	}

	return &Tree{levels: levels}, nil
}

// Commit is the one-shot form of Build that only needs the root.
func Commit(leaves []field.Element) (field.Element, error) {
	t, err := Build(leaves)
	if err != nil {
		return field.Element{}, err
	}
	return t.Root(), nil
}

// Root returns the committed root, a single F element.
func (t *Tree) Root() field.Element {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Opening is an authentication path for one leaf: the leaf's index, its
// (unhashed) value, and the sibling hash at every level from the bottom up.
type Opening struct {
	LeafIndex uint64
	LeafValue field.Element
	Path      []field.Element
}

// Open produces an authentication path for the leaf at index i. rawLeaves
// is the (unpadded) vector the tree was built from; Open pads it the same
// way Build did so Opening.LeafValue is the true pre-image of the
// leaf-hash, which is what Verify recomputes from.
func (t *Tree) Open(i uint64, rawLeaves []field.Element) (Opening, error) {
	leafCount := uint64(len(t.levels[0]))
	if i >= leafCount {
		return Opening{}, ErrIndexOutOfRange
	}

	path := make([]field.Element, 0, len(t.levels)-1)
	idx := i
	for level := 0; level < len(t.levels)-1; level++ {
		siblingIdx := idx ^ 1
		path = append(path, t.levels[level][siblingIdx])
		idx /= 2
	}

	padded := rs.PadToPowerOfTwo(rawLeaves)
	return Opening{LeafIndex: i, LeafValue: padded[i], Path: path}, nil
}

// Verify recomputes leaf-hash(opening.LeafValue) and folds it up the
// authentication path, comparing the result against root. It returns
// false (never an error) on any mismatch, per spec.md §7's policy that
// verification never aborts.
func Verify(root field.Element, opening Opening) bool {
	cur := hashElements(opening.LeafValue)
	idx := opening.LeafIndex
	for _, sibling := range opening.Path {
		if idx%2 == 0 {
			cur = hashElements(cur, sibling)
		} else {
			cur = hashElements(sibling, cur)
		}
		idx /= 2
	}
	return field.Equal(cur, root)
}
