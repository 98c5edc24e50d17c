package nanopdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCoords(t *testing.T) {
	s := sample(t)
	m := s.Coords()
	require.NotNil(t, m)
	assert.Equal(t, 6, m.NVecs())
	for i := 0; i < 6; i++ {
		assert.Equal(t, [3]float64{float64(i + 1), 0, 0}, m.Vec(i))
	}
	assert.Equal(t, 21.0, mat.Sum(m))

	c, _ := s.Chain(1)
	cm := c.Coords()
	require.NotNil(t, cm)
	assert.Equal(t, 2, cm.NVecs())
	assert.Equal(t, [3]float64{5, 0, 0}, cm.Vec(0))

	r, _ := c.Residue(0)
	assert.Equal(t, 2, r.Coords().NVecs())
}

func TestCoordsSkipCleared(t *testing.T) {
	s := sample(t)
	a, _ := s.Chain(0)
	a.Clear()
	assert.Nil(t, a.Coords())
	m := s.Coords()
	require.NotNil(t, m)
	assert.Equal(t, 2, m.NVecs())

	empty, err := Parse("")
	require.NoError(t, err)
	assert.Nil(t, empty.Coords())
}
