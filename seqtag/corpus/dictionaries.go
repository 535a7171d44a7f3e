package corpus

import (
	"sort"

	"github.com/ZanzyTHEbar/seqtag/seqtag/dictionary"
	"github.com/ZanzyTHEbar/seqtag/seqtag/tagscheme"
)

// Sentinel tags that bracket every tag dictionary.
const (
	StartTag = "<START>"
	StopTag  = "<STOP>"
)

// TagDictionary collects the tag values of tagType over src. The result holds the
// unknown sentinel, "O", every value in first-seen order (the empty value for
// untagged tokens), then StartTag and StopTag.
func TagDictionary(src Source, tagType string) *dictionary.Dictionary {
	d := dictionary.New(true)
	d.Add(tagscheme.Outside)
	for s := range orEmpty(src).Sentences() {
		for _, t := range s.Tokens() {
			d.Add(t.Tag(tagType).Value)
		}
	}
	d.Add(StartTag)
	d.Add(StopTag)
	return d
}

// LabelDictionary collects sentence label values over src in first-seen order,
// without the unknown sentinel.
func LabelDictionary(src Source) *dictionary.Dictionary {
	d := dictionary.New(false)
	for s := range orEmpty(src).Sentences() {
		for _, l := range s.Labels() {
			d.Add(l.Value)
		}
	}
	return d
}

// VocabDictionary interns the token texts of src from most to least frequent,
// ties in first-seen order. Collection stops at the first text rarer than minFreq
// or once maxTokens texts are taken; -1 disables either limit.
func VocabDictionary(src Source, maxTokens, minFreq int) *dictionary.Dictionary {
	d := dictionary.New(true)
	for _, text := range mostCommon(src, maxTokens, minFreq) {
		d.Add(text)
	}
	return d
}

type tokenCount struct {
	text  string
	count int
}

func mostCommon(src Source, maxTokens, minFreq int) []string {
	index := make(map[string]int)
	var counts []tokenCount
	for s := range orEmpty(src).Sentences() {
		for _, t := range s.Tokens() {
			i, ok := index[t.Text]
			if !ok {
				i = len(counts)
				index[t.Text] = i
				counts = append(counts, tokenCount{text: t.Text})
			}
			counts[i].count++
		}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })

	var texts []string
	for _, c := range counts {
		if (minFreq != -1 && c.count < minFreq) || (maxTokens != -1 && len(texts) == maxTokens) {
			break
		}
		texts = append(texts, c.text)
	}
	return texts
}
