package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abstractsvm/svmverify/region"
)

// ReadPerturbationFile parses a FROM_FILE perturbation stream: one line
// per sample, each line holding spaceSize whitespace-separated tokens of
// the form "[l;u]". Rows are consumed in lockstep with a dataset's rows
// by the caller. Mirrors perturbation.c's read-from-file branch of
// perturbation_concretize.
func ReadPerturbationFile(r io.Reader, spaceSize int) ([]region.Perturbation, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var out []region.Perturbation
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) != spaceSize {
			return nil, fmt.Errorf("ReadPerturbationFile: line %d: %w: got %d tokens, want %d", lineNo, ErrMalformedPerturbation, len(tokens), spaceSize)
		}

		epsilonL := make([]float64, spaceSize)
		epsilonU := make([]float64, spaceSize)
		for i, tok := range tokens {
			l, u, err := parseBracketPair(tok)
			if err != nil {
				return nil, fmt.Errorf("ReadPerturbationFile: line %d coordinate %d: %w", lineNo, i, err)
			}
			epsilonL[i] = l
			epsilonU[i] = u
		}
		out = append(out, region.NewFromFile(epsilonL, epsilonU))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadPerturbationFile: %w", err)
	}
	return out, nil
}

// parseBracketPair parses a single "[l;u]" token into its two bounds.
func parseBracketPair(tok string) (float64, float64, error) {
	tok = strings.TrimSpace(tok)
	if !strings.HasPrefix(tok, "[") || !strings.HasSuffix(tok, "]") {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedPerturbation, tok)
	}
	inner := tok[1 : len(tok)-1]
	parts := strings.Split(inner, ";")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedPerturbation, tok)
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedPerturbation, tok)
	}
	u, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedPerturbation, tok)
	}
	return l, u, nil
}
