package svm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/abstractsvm/svmverify/kernel"
)

// Read parses a model from the OVO text format: a header line naming the
// classifier type, feature count and class count; a kernel line naming
// the kernel and its parameters; one "name support-vector-count" line per
// class; the flattened dual-coefficient matrix; the flattened support
// vectors; and finally one bias per pairwise classifier. Mirrors
// classifier_read (classifier.c), restricted to the "ovo" classifier
// type this verifier supports.
func Read(r io.Reader) (Model, error) {
	sc := &tokenScanner{s: bufio.NewScanner(r)}
	sc.s.Split(bufio.ScanWords)

	classifierType, err := sc.token()
	if err != nil {
		return Model{}, err
	}
	if classifierType != "ovo" {
		return Model{}, fmt.Errorf("Read: %q: %w", classifierType, ErrUnsupportedClassifierType)
	}

	spaceSize, err := sc.int()
	if err != nil {
		return Model{}, err
	}
	nClasses, err := sc.int()
	if err != nil {
		return Model{}, err
	}

	k, err := readKernel(sc)
	if err != nil {
		return Model{}, err
	}

	classes := make([]string, nClasses)
	nsv := make([]int, nClasses)
	total := 0
	for i := 0; i < nClasses; i++ {
		name, err := sc.token()
		if err != nil {
			return Model{}, err
		}
		n, err := sc.int()
		if err != nil {
			return Model{}, err
		}
		classes[i] = name
		nsv[i] = n
		total += n
	}

	alpha := make([][]float64, nClasses-1)
	for r := range alpha {
		row := make([]float64, total)
		for k := range row {
			v, err := sc.float()
			if err != nil {
				return Model{}, err
			}
			row[k] = v
		}
		alpha[r] = row
	}

	sv := make([][]float64, total)
	for i := range sv {
		row := make([]float64, spaceSize)
		for k := range row {
			v, err := sc.float()
			if err != nil {
				return Model{}, err
			}
			row[k] = v
		}
		sv[i] = row
	}

	nPairs := nClasses * (nClasses - 1) / 2
	bias := make([]float64, nPairs)
	for i := range bias {
		v, err := sc.float()
		if err != nil {
			return Model{}, err
		}
		bias[i] = v
	}

	m := Model{
		Kernel:          k,
		Classes:         classes,
		SpaceSize:       spaceSize,
		NSupportVectors: nsv,
		SupportVectors:  sv,
		Alpha:           alpha,
		Bias:            bias,
	}
	if m.IsLinear() {
		m.precomputeLinearCoefficients()
	}
	return m, nil
}

func readKernel(sc *tokenScanner) (kernel.Kernel, error) {
	name, err := sc.token()
	if err != nil {
		return kernel.Kernel{}, err
	}

	switch name {
	case "rbf":
		gamma, err := sc.float()
		if err != nil {
			return kernel.Kernel{}, err
		}
		return kernel.NewRBF(gamma), nil
	case "polynomial":
		degree, err := sc.float()
		if err != nil {
			return kernel.Kernel{}, err
		}
		c, err := sc.float()
		if err != nil {
			return kernel.Kernel{}, err
		}
		return kernel.NewPolynomial(uint(degree), c), nil
	case "linear":
		return kernel.NewLinear(), nil
	default:
		return kernel.Kernel{}, fmt.Errorf("readKernel: %q: %w", name, ErrUnsupportedKernelName)
	}
}

// tokenScanner adapts a bufio.Scanner split on words into typed token
// readers, so Read's call sites stay free of repeated error-checking
// boilerplate.
type tokenScanner struct {
	s *bufio.Scanner
}

func (t *tokenScanner) token() (string, error) {
	if !t.s.Scan() {
		if err := t.s.Err(); err != nil {
			return "", fmt.Errorf("token: %w", err)
		}
		return "", fmt.Errorf("token: unexpected end of stream: %w", ErrMalformedModel)
	}
	return t.s.Text(), nil
}

func (t *tokenScanner) int() (int, error) {
	tok, err := t.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("int(%q): %w", tok, ErrMalformedModel)
	}
	return v, nil
}

func (t *tokenScanner) float() (float64, error) {
	tok, err := t.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("float(%q): %w", tok, ErrMalformedModel)
	}
	return v, nil
}
