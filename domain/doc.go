// Package domain implements the Hybrid abstract domain: the Interval and
// RAF domains are each sound but incomparable (neither is always tighter
// than the other — RAF tracks correlation at the cost of a looser
// multiplication rule, Interval has no correlation but exact
// multiplication), so computing a result in both and intersecting yields a
// bound at least as tight as either alone.
package domain
