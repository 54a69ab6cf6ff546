// Package lstar implements the table-based L* learner of spec §4.4: an
// observation table over a growing prefix set P and suffix set S, refined to
// closedness and consistency between hypotheses, with counter-examples
// absorbed as new prefixes.
//
// Row identity (spec §9 "Row keys") uses a fixed-width bitset over S via
// github.com/bits-and-blooms/bitset, growing with S as new suffixes are
// added; Row.Key() renders it to a canonical string for map use, so table
// code never compares *bitset.BitSet values directly.
package lstar
