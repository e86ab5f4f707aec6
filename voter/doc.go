// Package voter aggregates abstract one-versus-one pairwise scores into
// the set of classes that could possibly win the vote, under the
// uncertainty an Interval bound for each pair introduces: a pair whose
// bound straddles zero could cast its vote either way, so every class
// reachable by some concrete resolution of the undecided pairs is kept.
package voter
