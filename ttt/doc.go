// Package ttt implements the discrimination-tree-based TTT learner of spec
// §4.5: a binary tree whose leaves are DFA states keyed by access words and
// whose internal nodes carry suffix discriminators, refined by splitting a
// leaf on counter-example analysis.
//
// Tree nodes use Go's ordinary reference semantics to realize the "become"
// requirement (spec §9): every external reference to a node — the tree's
// root field, a parent's children map entry, the leaf→access-word index —
// holds the same *DTNode pointer, so converting a leaf into an internal
// node in place is exactly mutating that pointer's fields (node.go's
// become method), with no separate arena or indirection layer needed.
package ttt
