package corpus

import (
	"strings"

	"github.com/ZanzyTHEbar/seqtag/seqtag/dictionary"
)

// Multi presents several corpora as one. Splits are the member splits chained in
// order; Downsample is applied to every member.
type Multi struct {
	corpora []Corpus
}

var _ Corpus = (*Multi)(nil)

func NewMulti(corpora ...Corpus) *Multi {
	return &Multi{corpora: corpora}
}

func (m *Multi) Corpora() []Corpus { return m.corpora }

// Name joins the member names with "+".
func (m *Multi) Name() string {
	names := make([]string, len(m.corpora))
	for i, c := range m.corpora {
		names[i] = c.Name()
	}
	return strings.Join(names, "+")
}

func (m *Multi) Train() Source { return m.chain(Corpus.Train) }
func (m *Multi) Dev() Source { return m.chain(Corpus.Dev) }
func (m *Multi) Test() Source { return m.chain(Corpus.Test) }
func (m *Multi) All() Source { return m.chain(Corpus.All) }

func (m *Multi) chain(split func(Corpus) Source) Source {
	sources := make([]Source, len(m.corpora))
	for i, c := range m.corpora {
		sources[i] = split(c)
	}
	return Concat(sources...)
}

func (m *Multi) Downsample(proportion float64, onlyTrain bool) Corpus {
	for _, c := range m.corpora {
		c.Downsample(proportion, onlyTrain)
	}
	return m
}

func (m *Multi) MakeTagDictionary(tagType string) *dictionary.Dictionary {
	return TagDictionary(m.All(), tagType)
}

func (m *Multi) MakeLabelDictionary() *dictionary.Dictionary {
	return LabelDictionary(m.All())
}

func (m *Multi) MakeVocabDictionary(maxTokens, minFreq int) *dictionary.Dictionary {
	return VocabDictionary(m.Train(), maxTokens, minFreq)
}

func (m *Multi) String() string {
	parts := make([]string, len(m.corpora))
	for i, c := range m.corpora {
		if s, ok := c.(interface{ String() string }); ok {
			parts[i] = s.String()
		} else {
			parts[i] = c.Name()
		}
	}
	return strings.Join(parts, "\n")
}
