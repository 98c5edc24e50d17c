package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(t *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 2, A.NVecs())
	assert.Equal(t, [3]float64{4, 5, 6}, A.Vec(1))

	_, err = NewMatrix([]float64{1, 2})
	var e Error
	require.ErrorAs(t, err, &e)

	_, err = NewMatrix(nil)
	require.Error(t, err)
}

func TestVecView(t *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	view := A.VecView(1)
	view.Set(0, 0, 100)
	assert.Equal(t, 100.0, A.At(1, 0))
	assert.Equal(t, 1, view.NVecs())
}

func TestZerosIsGonumMatrix(t *testing.T) {
	Z := Zeros(4)
	var m mat.Matrix = Z
	r, c := m.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.0, mat.Sum(Z))
}
