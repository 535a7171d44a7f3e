package embedding

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Store holds named vector attachments of a token or sentence. The vectors are
// opaque payloads produced by an external embedder.
type Store struct {
	vectors map[string]mat.Vector
}

// Set attaches vec under name, replacing any previous attachment.
func (s *Store) Set(name string, vec mat.Vector) {
	if s.vectors == nil {
		s.vectors = make(map[string]mat.Vector)
	}
	s.vectors[name] = vec
}

// Get returns the attachment stored under name.
func (s *Store) Get(name string) (mat.Vector, bool) {
	v, ok := s.vectors[name]
	return v, ok
}

// Names returns the attachment names in lexicographic order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vectors))
	for name := range s.vectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Len() int { return len(s.vectors) }

// Clear drops all attachments.
func (s *Store) Clear() {
	s.vectors = nil
}

// Concat stacks all attachments ordered by name into a single vector.
// The result has length zero when nothing is attached.
func (s *Store) Concat() *mat.VecDense {
	names := s.Names()
	total := 0
	for _, name := range names {
		total += s.vectors[name].Len()
	}
	if total == 0 {
		return &mat.VecDense{}
	}

	data := make([]float64, 0, total)
	for _, name := range names {
		v := s.vectors[name]
		if v.Len() == 0 {
			continue
		}
		data = append(data, mat.Col(nil, 0, v)...)
	}
	return mat.NewVecDense(total, data)
}

// FromFloat32 converts a provider output row into a dense vector.
func FromFloat32(values []float32) *mat.VecDense {
	if len(values) == 0 {
		return &mat.VecDense{}
	}
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return mat.NewVecDense(len(data), data)
}
