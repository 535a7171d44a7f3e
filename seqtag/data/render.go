package data

import (
	"strings"

	"github.com/ZanzyTHEbar/seqtag/seqtag/label"
)

// ToTokenizedString joins the token texts with single spaces.
func (s *Sentence) ToTokenizedString() string {
	texts := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		texts[i] = t.Text
	}
	return strings.Join(texts, " ")
}

// ToPlainString rebuilds the text from WhitespaceAfter.
func (s *Sentence) ToPlainString() string {
	var b strings.Builder
	for _, t := range s.tokens {
		b.WriteString(t.Text)
		if t.WhitespaceAfter {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// ToOriginalText rebuilds the text from the token offsets.
func (s *Sentence) ToOriginalText() string {
	return originalText(s.tokens, 0)
}

// ToTaggedString renders each token followed by its non-outside tags, e.g.
// "George <B-PER> Washington <E-PER> went". When mainTag is not empty only that
// tag type is shown.
func (s *Sentence) ToTaggedString(mainTag string) string {
	var parts []string
	for _, t := range s.tokens {
		parts = append(parts, t.Text)

		var tags []string
		for _, tagType := range t.tagOrder {
			if mainTag != "" && mainTag != tagType {
				continue
			}
			value := t.Tag(tagType).Value
			if value == "" || value == "O" {
				continue
			}
			tags = append(tags, value)
		}
		if len(tags) > 0 {
			parts = append(parts, "<"+strings.Join(tags, "/")+">")
		}
	}
	return strings.Join(parts, " ")
}

// SentenceDict is the serialized form of a sentence.
type SentenceDict struct {
	Text     string        `json:"text"`
	Labels   []label.Label `json:"labels"`
	Entities []SpanDict    `json:"entities"`
}

// ToDict serializes the sentence with its labels and, when tagType is not empty,
// the spans decoded from that tag type.
func (s *Sentence) ToDict(tagType string) SentenceDict {
	d := SentenceDict{
		Text:     s.ToOriginalText(),
		Labels:   s.Labels(),
		Entities: []SpanDict{},
	}
	if tagType == "" {
		return d
	}
	for _, span := range s.GetSpans(tagType) {
		d.Entities = append(d.Entities, span.ToDict())
	}
	return d
}
