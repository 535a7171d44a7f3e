package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Provider turns token texts into vectors of a fixed size. Real models live
// outside this module and are plugged in through this interface.
type Provider interface {
	Dimensions() int
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// HashProvider derives a unit-length vector per text from chained SHA-256
// blocks. Equal texts map to equal vectors, which makes it a stand-in for a
// real model in development and tests.
type HashProvider struct {
	dims      int
	lowercase bool
}

var _ Provider = (*HashProvider)(nil)

// NewHashProvider returns a HashProvider of dims dimensions (64 when dims <= 0).
func NewHashProvider(dims int) *HashProvider {
	if dims <= 0 {
		dims = 64
	}
	return &HashProvider{dims: dims}
}

// Lowercased makes the provider ignore case.
func (h *HashProvider) Lowercased() *HashProvider {
	return &HashProvider{dims: h.dims, lowercase: true}
}

func (h *HashProvider) Dimensions() int { return h.dims }

func (h *HashProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if h.lowercase {
			text = strings.ToLower(text)
		}
		out[i] = h.vector(text)
	}
	return out, nil
}

func (h *HashProvider) vector(text string) []float32 {
	values := make([]float64, 0, h.dims+sha256.Size)
	var block [4]byte
	for n := uint32(0); len(values) < h.dims; n++ {
		binary.LittleEndian.PutUint32(block[:], n)
		sum := sha256.Sum256(append(block[:], text...))
		for _, b := range sum {
			values = append(values, float64(b)-127.5)
		}
	}
	values = values[:h.dims]
	if norm := floats.Norm(values, 2); norm > 0 {
		floats.Scale(1/norm, values)
	}

	vec := make([]float32, h.dims)
	for i, v := range values {
		vec[i] = float32(v)
	}
	return vec
}

// Resize returns a copy of vec cut or zero-padded to dims. dims <= 0 keeps the
// original length.
func Resize(vec []float32, dims int) []float32 {
	if dims <= 0 {
		dims = len(vec)
	}
	out := make([]float32, dims)
	copy(out, vec)
	return out
}
