package dataset_test

import (
	"strings"
	"testing"

	"github.com/abstractsvm/svmverify/dataset"
	"github.com/stretchr/testify/require"
)

const fixture = `# 3 2
a,1.0,2.0
b,-1.0,0.5
c,0.0,0.0
`

func TestReadParsesRows(t *testing.T) {
	d, err := dataset.Read(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Equal(t, 3, d.Size())
	require.Equal(t, 2, d.SpaceSize())
	require.Equal(t, "a", d.Label(0))
	require.Equal(t, []float64{1.0, 2.0}, d.Row(0))
	require.Equal(t, "c", d.Label(2))
}

func TestReadRejectsMalformedHeader(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, dataset.ErrMalformedHeader)
}

func TestReadRejectsShortRow(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("# 1 2\na,1.0\n"))
	require.ErrorIs(t, err, dataset.ErrMalformedRow)
}

func TestReadRejectsMissingRows(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("# 2 2\na,1.0,2.0\n"))
	require.ErrorIs(t, err, dataset.ErrMalformedRow)
}
