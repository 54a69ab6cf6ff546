package ttt

import "github.com/arrowstate/rpclearn/alphabet"

// DTNode is a discrimination-tree node, modeled as the tagged union spec §9
// recommends: a leaf carries only rep, an internal node carries only
// discriminator and children. The zero value has isLeaf = false, so it is
// not a leaf; leaves are built with newLeaf.
type DTNode struct {
	isLeaf bool

	// rep is the leaf's representative access word. Meaningless on an
	// internal node.
	rep alphabet.Word

	// discriminator is the internal node's distinguishing suffix.
	// Meaningless on a leaf.
	discriminator alphabet.Word

	// children maps the boolean MQ(w·discriminator) result to the subtree
	// reached for that result. Vestigial (always nil) on a leaf, per spec
	// §9's "children field on leaves is vestigial and should be omitted" —
	// left as the zero value rather than omitted from the struct, since Go
	// has no sum-type variant mechanism to omit a field conditionally.
	children map[bool]*DTNode
}

// newLeaf builds a leaf node with the given representative.
func newLeaf(rep alphabet.Word) *DTNode {
	return &DTNode{isLeaf: true, rep: rep}
}

// become replaces n's content in place with other's, so every existing
// pointer to n observes the change — the mechanism behind splitting a leaf
// into an internal node without invalidating sift paths already holding a
// *DTNode for n (spec §9 "become").
func (n *DTNode) become(other *DTNode) {
	n.isLeaf = other.isLeaf
	n.rep = other.rep
	n.discriminator = other.discriminator
	n.children = other.children
}
