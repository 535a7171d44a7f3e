package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	c := newTestCorpus(t)
	r := Statistics(c, "ner")

	assert.Equal(t, "TRAIN", r.Train.Dataset)
	assert.Equal(t, 2, r.Train.TotalDocuments)
	assert.Equal(t, map[string]int{"history": 2, "travel": 1}, r.Train.DocumentsPerClass)
	assert.Equal(t, map[string]int{"B-PER": 1, "I-PER": 1, "O": 2, "B-LOC": 1}, r.Train.TokensPerTag)
	assert.Equal(t, TokenCounts{Total: 5, Min: 2, Max: 3, Avg: 2.5}, r.Train.Tokens)
	assert.Equal(t, 1, r.Dev.TotalDocuments)
	assert.Equal(t, SplitStatistics{}, r.Test)

	out, err := r.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n    \"TRAIN\": {\n        \"dataset\": \"TRAIN\",")
	assert.JSONEq(t, `{
		"TRAIN": {
			"dataset": "TRAIN",
			"total_number_of_documents": 2,
			"number_of_documents_per_class": {"history": 2, "travel": 1},
			"number_of_tokens_per_tag": {"B-LOC": 1, "B-PER": 1, "I-PER": 1, "O": 2},
			"number_of_tokens": {"total": 5, "min": 2, "max": 3, "avg": 2.5}
		},
		"TEST": {},
		"DEV": {
			"dataset": "DEV",
			"total_number_of_documents": 1,
			"number_of_documents_per_class": {"travel": 1},
			"number_of_tokens_per_tag": {"B-LOC": 1},
			"number_of_tokens": {"total": 1, "min": 1, "max": 1, "avg": 1}
		}
	}`, string(out))
}

func TestStatisticsSkipsUntaggedTokens(t *testing.T) {
	stats := SplitStatisticsFor(Sentences{sentence(t, "a/X b c/X")}, "TRAIN", "ner")
	assert.Equal(t, map[string]int{"X": 2}, stats.TokensPerTag)
	assert.Equal(t, map[string]int{}, stats.DocumentsPerClass)

	stats = SplitStatisticsFor(Sentences{sentence(t, "a/X")}, "TRAIN", "pos")
	assert.Empty(t, stats.TokensPerTag)
}

func TestStatisticsCountsLabelOccurrences(t *testing.T) {
	src := Sentences{
		sentence(t, "a", "news", "news"),
		sentence(t, "b", "news", "sports"),
	}

	stats := SplitStatisticsFor(src, "TRAIN", "ner")
	assert.Equal(t, map[string]int{"news": 3, "sports": 1}, stats.DocumentsPerClass)

	// the label index counts sentences instead
	assert.Equal(t, 2, NewLabelIndex(src).Count("news"))
}
