package onehot

import "fmt"

// TierSet partitions a sample's feature indices into tiers: groups of
// mutually exclusive one-hot coordinates. A feature not part of any
// one-hot group is its own singleton tier with IsOneHot false.
type TierSet struct {
	tierOf   []int
	isOneHot []bool
}

// NewTierSet validates and wraps tierOf/isOneHot, mirroring the original's
// tier.tiers / isOH parallel arrays (tier.h).
func NewTierSet(tierOf []int, isOneHot []bool) (TierSet, error) {
	if len(tierOf) != len(isOneHot) {
		return TierSet{}, fmt.Errorf("NewTierSet: len(tierOf)=%d len(isOneHot)=%d: %w", len(tierOf), len(isOneHot), ErrSizeMismatch)
	}
	return TierSet{tierOf: append([]int(nil), tierOf...), isOneHot: append([]bool(nil), isOneHot...)}, nil
}

// Size returns the number of features covered by t.
func (t TierSet) Size() int {
	return len(t.tierOf)
}

// TierOf returns the tier id assigned to feature i.
func (t TierSet) TierOf(i int) int {
	return t.tierOf[i]
}

// IsOneHot reports whether feature i belongs to a one-hot tier.
func (t TierSet) IsOneHot(i int) bool {
	return t.isOneHot[i]
}

// TierCount returns the number of distinct tier ids in t — the original
// tier file format's unique_count field, which dataset.ReadTiers does not
// read; it is computed from the tier ids on every call rather than taken
// from a stored count.
func (t TierSet) TierCount() int {
	seen := make(map[int]struct{})
	for _, id := range t.tierOf {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// Members returns the feature indices sharing feature i's tier id, in
// ascending order.
func (t TierSet) Members(i int) []int {
	id := t.tierOf[i]
	var members []int
	for j, tid := range t.tierOf {
		if tid == id {
			members = append(members, j)
		}
	}
	return members
}
