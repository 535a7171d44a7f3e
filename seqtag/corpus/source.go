// Package corpus groups sentences into train/dev/test splits and derives the
// vocabularies, statistics and label indexes a tagger is built from.
package corpus

import (
	"iter"
	"slices"

	"github.com/ZanzyTHEbar/seqtag/seqtag/data"
)

// Source produces a fresh sequence of sentences on every call to Sentences.
// Implementations must be restartable: iterating twice yields the same sentences.
type Source interface {
	Sentences() iter.Seq[*data.Sentence]
}

// Sentences is a materialized Source.
type Sentences []*data.Sentence

func (s Sentences) Sentences() iter.Seq[*data.Sentence] { return slices.Values(s) }

// SourceFunc is a generator-backed Source. The function is invoked anew for each
// iteration, so it must not depend on state consumed by a previous run.
type SourceFunc func(yield func(*data.Sentence) bool)

func (f SourceFunc) Sentences() iter.Seq[*data.Sentence] { return iter.Seq[*data.Sentence](f) }

// Collect materializes src. A nil src yields an empty slice.
func Collect(src Source) Sentences {
	if src == nil {
		return Sentences{}
	}
	if s, ok := src.(Sentences); ok {
		return s
	}
	out := Sentences{}
	for s := range src.Sentences() {
		out = append(out, s)
	}
	return out
}

// Count returns the number of sentences src produces.
func Count(src Source) int {
	if src == nil {
		return 0
	}
	if s, ok := src.(Sentences); ok {
		return len(s)
	}
	n := 0
	for range src.Sentences() {
		n++
	}
	return n
}

// Concat chains sources in order. Nil sources are skipped.
func Concat(sources ...Source) Source {
	return SourceFunc(func(yield func(*data.Sentence) bool) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			for s := range src.Sentences() {
				if !yield(s) {
					return
				}
			}
		}
	})
}

func orEmpty(src Source) Source {
	if src == nil {
		return Sentences{}
	}
	return src
}
