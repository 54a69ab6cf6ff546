// Package main is the rpclearn CLI: a thin cobra/viper host that wires the
// alphabet/oracle/equivalence-oracle/learner packages together. It is the
// "external collaborator" named out of scope in spec §1 — selecting an
// oracle variant and a learner and printing the result is all it does; the
// algorithms themselves live in package lstar/ttt.
package main
