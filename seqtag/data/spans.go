package data

import (
	internal "github.com/ZanzyTHEbar/seqtag/seqtag"
)

// Tag prefixes recognized by span extraction.
const (
	prefixBegin  = "B-"
	prefixInside = "I-"
	prefixOut    = "O-"
	prefixEnd    = "E-"
	prefixSingle = "S-"
)

// Vote weight of the token that opens a span; all other tokens weigh 1.0.
const openerWeight = 1.1

type spanConfig struct {
	minScore float64
}

// SpanOption configures GetSpans.
type SpanOption func(*spanConfig)

// WithMinScore keeps only spans whose mean tag score is strictly greater than min.
func WithMinScore(min float64) SpanOption {
	return func(c *spanConfig) { c.minScore = min }
}

// GetSpans decodes the tags of tagType into spans, in sentence order.
//
// Missing and "O" tags are outside any span. Values without a B-, I-, O-, E- or
// S- prefix are single-token entities. B- and S- open a new span, and so does any
// in-span tag that follows an S- tag of a different type. A span's type is the
// weighted majority of its tokens' types, the opening token weighing 1.1; ties go
// to the type seen first.
func (s *Sentence) GetSpans(tagType string, opts ...SpanOption) []Span {
	cfg := spanConfig{minScore: internal.DefaultMinScore}
	for _, opt := range opts {
		opt(&cfg)
	}

	var spans []Span
	var current []*Token
	var votes typeVotes

	flush := func() {
		if len(current) == 0 {
			return
		}
		sum := 0.0
		for _, t := range current {
			sum += t.Tag(tagType).Score()
		}
		score := sum / float64(len(current))
		if score > cfg.minScore {
			spans = append(spans, NewSpan(current, votes.winner(), score))
		}
		current = nil
		votes = nil
	}

	previous := "O"
	for _, token := range s.tokens {
		value := normalizeTag(token.Tag(tagType).Value)
		prefix, suffix := value[:2], value[2:]

		inSpan := prefix != prefixOut
		startsNew := prefix == prefixBegin || prefix == prefixSingle
		if tagPrefix(previous) == prefixSingle && previous[2:] != suffix && inSpan {
			startsNew = true
		}

		if startsNew || !inSpan {
			flush()
		}

		if inSpan {
			current = append(current, token)
			weight := 1.0
			if startsNew {
				weight = openerWeight
			}
			votes = votes.add(suffix, weight)
		}
		previous = value
	}
	flush()

	return spans
}

// normalizeTag maps a raw tag value onto a two-character prefix plus type.
func normalizeTag(value string) string {
	if value == "" || value == "O" {
		return prefixOut
	}
	switch tagPrefix(value) {
	case prefixBegin, prefixInside, prefixOut, prefixEnd, prefixSingle:
		return value
	}
	return prefixSingle + value
}

func tagPrefix(value string) string {
	if len(value) < 2 {
		return value
	}
	return value[:2]
}

type typeVote struct {
	tag    string
	weight float64
}

// typeVotes accumulates weights per type in first-seen order.
type typeVotes []typeVote

func (v typeVotes) add(tag string, weight float64) typeVotes {
	for i := range v {
		if v[i].tag == tag {
			v[i].weight += weight
			return v
		}
	}
	return append(v, typeVote{tag: tag, weight: weight})
}

func (v typeVotes) winner() string {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i].weight > v[best].weight {
			best = i
		}
	}
	return v[best].tag
}
