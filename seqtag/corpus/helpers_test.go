package corpus

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/seqtag/seqtag/data"

	"github.com/stretchr/testify/require"
)

// sentence builds a sentence from space separated text, "ner" tags given as
// "word/TAG" pairs, and sentence labels.
func sentence(t *testing.T, tagged string, labels ...string) *data.Sentence {
	t.Helper()
	var words, tags []string
	for _, field := range strings.Fields(tagged) {
		word, tag, _ := strings.Cut(field, "/")
		words = append(words, word)
		tags = append(tags, tag)
	}
	s, err := data.NewSentenceFromText(strings.Join(words, " "))
	require.NoError(t, err)
	for i, tag := range tags {
		if tag != "" {
			s.At(i).AddTag("ner", tag, 1.0)
		}
	}
	s.AddLabelValues(labels...)
	return s
}

func texts(src Source) []string {
	out := []string{}
	for s := range src.Sentences() {
		out = append(out, s.ToTokenizedString())
	}
	return out
}
