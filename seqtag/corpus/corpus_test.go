package corpus

import (
	"bytes"
	"testing"

	"github.com/ZanzyTHEbar/seqtag/seqtag/data"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceVariants(t *testing.T) {
	a := sentence(t, "a")
	b := sentence(t, "b")

	calls := 0
	gen := SourceFunc(func(yield func(*data.Sentence) bool) {
		calls++
		for _, s := range []*data.Sentence{a, b} {
			if !yield(s) {
				return
			}
		}
	})

	tests := []struct {
		name string
		src  Source
	}{
		{"Materialized", Sentences{a, b}},
		{"Generator", gen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// restartable
			assert.Equal(t, []string{"a", "b"}, texts(tt.src))
			assert.Equal(t, []string{"a", "b"}, texts(tt.src))
			assert.Equal(t, 2, Count(tt.src))
			assert.Len(t, Collect(tt.src), 2)
		})
	}
	assert.Equal(t, 4, calls)
}

func TestSourceEarlyStop(t *testing.T) {
	src := Concat(Sentences{sentence(t, "a"), sentence(t, "b")}, nil, Sentences{sentence(t, "c")})
	var seen []string
	for s := range src.Sentences() {
		seen = append(seen, s.ToTokenizedString())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, []string{"a", "b", "c"}, texts(src))
}

func TestCollectNil(t *testing.T) {
	assert.Empty(t, Collect(nil))
	assert.Equal(t, 0, Count(nil))
}

func newTestCorpus(t *testing.T, opts ...Option) *Tagged {
	train := Sentences{
		sentence(t, "George/B-PER Washington/I-PER went/O", "history"),
		sentence(t, "to/O Washington/B-LOC", "history", "travel"),
	}
	dev := SourceFunc(func(yield func(*data.Sentence) bool) {
		yield(sentence(t, "Paris/B-LOC", "travel"))
	})
	return NewTagged(train, dev, nil, opts...)
}

func TestTaggedSplits(t *testing.T) {
	c := newTestCorpus(t)

	assert.Equal(t, "corpus", c.Name())
	assert.NotEqual(t, [16]byte{}, [16]byte(c.ID()))
	assert.Equal(t, 2, Count(c.Train()))
	assert.Equal(t, 1, Count(c.Dev()))
	assert.Equal(t, 0, Count(c.Test()))
	assert.Equal(t, []string{"George Washington went", "to Washington", "Paris"}, texts(c.All()))
	assert.Equal(t, "TaggedCorpus: 2 train + 1 dev + 0 test sentences", c.String())
}

func TestTaggedDownsample(t *testing.T) {
	var train, dev Sentences
	for range 8 {
		train = append(train, sentence(t, "t"))
		dev = append(dev, sentence(t, "d"))
	}

	t.Run("AllSplits", func(t *testing.T) {
		c := NewTagged(train, dev, nil)
		got := c.Downsample(0.25, false)
		assert.Same(t, c, got)
		assert.Equal(t, 3, Count(c.Train()))
		assert.Equal(t, 3, Count(c.Dev()))
		assert.Equal(t, 0, Count(c.Test()))
	})

	t.Run("OnlyTrain", func(t *testing.T) {
		c := NewTagged(train, dev, nil)
		c.Downsample(0.25, true)
		assert.Equal(t, 3, Count(c.Train()))
		assert.Equal(t, 8, Count(c.Dev()))
	})
}

func TestTaggedLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c := newTestCorpus(t, WithName("conll"), WithLogger(logger))

	c.MakeTagDictionary("ner")
	assert.Contains(t, buf.String(), `"corpus":"conll"`)
	assert.Contains(t, buf.String(), `"message":"built tag dictionary"`)
}

func TestMulti(t *testing.T) {
	first := newTestCorpus(t, WithName("first"))
	second := NewTagged(
		Sentences{sentence(t, "Berlin/S-LOC", "news")},
		nil,
		Sentences{sentence(t, "Bonn/S-LOC")},
		WithName("second"),
	)
	m := NewMulti(first, second)

	assert.Equal(t, "first+second", m.Name())
	assert.Len(t, m.Corpora(), 2)
	assert.Equal(t, []string{"George Washington went", "to Washington", "Berlin"}, texts(m.Train()))
	assert.Equal(t, []string{"Paris"}, texts(m.Dev()))
	assert.Equal(t, []string{"Bonn"}, texts(m.Test()))
	assert.Equal(t, 5, Count(m.All()))
	assert.Equal(t,
		"TaggedCorpus: 2 train + 1 dev + 0 test sentences\nTaggedCorpus: 1 train + 0 dev + 1 test sentences",
		m.String())

	tags := m.MakeTagDictionary("ner")
	assert.Equal(t, []string{"<unk>", "O", "B-PER", "I-PER", "B-LOC", "S-LOC", "<START>", "<STOP>"}, tags.Items())

	labels := m.MakeLabelDictionary()
	assert.Equal(t, []string{"history", "travel", "news"}, labels.Items())

	vocab := m.MakeVocabDictionary(-1, 1)
	assert.Equal(t, []string{"<unk>", "Washington", "George", "went", "to", "Berlin"}, vocab.Items())

	require.Same(t, m, m.Downsample(0.5, true))
	assert.Equal(t, 2, Count(first.Train()))
	assert.Equal(t, 1, Count(first.Dev()))
	assert.Equal(t, 1, Count(second.Train()))
	assert.Equal(t, 1, Count(second.Test()))
}
