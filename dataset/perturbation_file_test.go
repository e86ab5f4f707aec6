package dataset_test

import (
	"strings"
	"testing"

	"github.com/abstractsvm/svmverify/dataset"
	"github.com/abstractsvm/svmverify/region"
	"github.com/stretchr/testify/require"
)

func TestReadPerturbationFileParsesBracketPairs(t *testing.T) {
	ps, err := dataset.ReadPerturbationFile(strings.NewReader("[-0.1;0.2] [0;1]\n"), 2)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	require.Equal(t, region.FromFile, ps[0].Kind)
	require.Equal(t, []float64{-0.1, 0}, ps[0].EpsilonL)
	require.Equal(t, []float64{0.2, 1}, ps[0].EpsilonU)
}

func TestReadPerturbationFileRejectsWrongTokenCount(t *testing.T) {
	_, err := dataset.ReadPerturbationFile(strings.NewReader("[0;1]\n"), 2)
	require.ErrorIs(t, err, dataset.ErrMalformedPerturbation)
}

func TestReadPerturbationFileRejectsBadBracket(t *testing.T) {
	_, err := dataset.ReadPerturbationFile(strings.NewReader("0;1 [0;1]\n"), 2)
	require.ErrorIs(t, err, dataset.ErrMalformedPerturbation)
}

func TestReadPerturbationFileSkipsBlankLines(t *testing.T) {
	ps, err := dataset.ReadPerturbationFile(strings.NewReader("[0;1] [0;1]\n\n[-1;1] [-1;1]\n"), 2)
	require.NoError(t, err)
	require.Len(t, ps, 2)
}
