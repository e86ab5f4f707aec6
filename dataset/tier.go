package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abstractsvm/svmverify/onehot"
)

// ReadTiers parses a tier file: 2*spaceSize whitespace-separated unsigned
// integers. The first spaceSize tokens are per-coordinate tier ids
// (monotonically non-decreasing); the next spaceSize tokens are 0/1
// one-hot membership flags. Mirrors tier.c's read_tier_file.
func ReadTiers(r io.Reader, spaceSize int) (onehot.TierSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	sc.Split(bufio.ScanWords)

	tierOf := make([]int, spaceSize)
	last := -1
	for i := 0; i < spaceSize; i++ {
		v, err := nextUint(sc)
		if err != nil {
			return onehot.TierSet{}, fmt.Errorf("ReadTiers: tier id %d: %w", i, err)
		}
		if v < last {
			return onehot.TierSet{}, fmt.Errorf("ReadTiers: %w: tier id %d decreases at coordinate %d", ErrMalformedTiers, v, i)
		}
		last = v
		tierOf[i] = v
	}

	isOneHot := make([]bool, spaceSize)
	for i := 0; i < spaceSize; i++ {
		v, err := nextUint(sc)
		if err != nil {
			return onehot.TierSet{}, fmt.Errorf("ReadTiers: one-hot flag %d: %w", i, err)
		}
		if v != 0 && v != 1 {
			return onehot.TierSet{}, fmt.Errorf("ReadTiers: %w: flag %d at coordinate %d", ErrMalformedTiers, v, i)
		}
		isOneHot[i] = v == 1
	}

	return onehot.NewTierSet(tierOf, isOneHot)
}

func nextUint(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTiers, sc.Text())
	}
	return v, nil
}
