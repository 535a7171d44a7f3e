package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestStoreConcatOrdersByName(t *testing.T) {
	var s Store
	s.Set("glove", mat.NewVecDense(2, []float64{1, 2}))
	s.Set("char", mat.NewVecDense(1, []float64{9}))
	s.Set("flair", mat.NewVecDense(3, []float64{4, 5, 6}))

	assert.Equal(t, []string{"char", "flair", "glove"}, s.Names())

	v := s.Concat()
	require.Equal(t, 6, v.Len())
	assert.Equal(t, []float64{9, 4, 5, 6, 1, 2}, v.RawVector().Data)
}

func TestStoreEmpty(t *testing.T) {
	var s Store
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Concat().Len())

	s.Set("a", mat.NewVecDense(1, []float64{1}))
	s.Clear()
	assert.Equal(t, 0, s.Concat().Len())
	_, ok := s.Get("a")
	assert.False(t, ok)
}

func TestStoreReplace(t *testing.T) {
	var s Store
	s.Set("a", mat.NewVecDense(1, []float64{1}))
	s.Set("a", mat.NewVecDense(2, []float64{3, 4}))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []float64{3, 4}, s.Concat().RawVector().Data)
}

func TestHashProvider(t *testing.T) {
	p := NewHashProvider(8)
	assert.Equal(t, 8, p.Dimensions())

	out, err := p.Embed(context.Background(), []string{"Berlin", "Berlin", "Paris"})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Len(t, out[0], 8)
	assert.Equal(t, out[0], out[1])
	assert.NotEqual(t, out[0], out[2])
	assert.InDelta(t, 1.0, floats.Norm(FromFloat32(out[0]).RawVector().Data, 2), 1e-5)

	wide, err := NewHashProvider(100).Embed(context.Background(), []string{"Berlin"})
	require.NoError(t, err)
	assert.Len(t, wide[0], 100)

	lower, err := p.Lowercased().Embed(context.Background(), []string{"BERLIN", "berlin"})
	require.NoError(t, err)
	assert.Equal(t, lower[0], lower[1])
	assert.NotEqual(t, out[0], lower[0])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Embed(ctx, []string{"x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResize(t *testing.T) {
	assert.Equal(t, []float32{1, 2}, Resize([]float32{1, 2, 3}, 2))
	assert.Equal(t, []float32{1, 0, 0}, Resize([]float32{1}, 3))
	assert.Equal(t, []float32{1}, Resize([]float32{1}, 0))

	in := []float32{1, 2}
	out := Resize(in, 2)
	out[0] = 9
	assert.Equal(t, float32(1), in[0])
}

func TestFromFloat32(t *testing.T) {
	v := FromFloat32([]float32{0.5, -1})
	assert.Equal(t, []float64{0.5, -1}, v.RawVector().Data)
	assert.Equal(t, 0, FromFloat32(nil).Len())
}
