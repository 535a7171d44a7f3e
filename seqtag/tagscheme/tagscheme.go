// Package tagscheme normalizes per-token tag sequences between the IOB1, IOB2 and
// IOBES conventions. Both conversions work in place on a sentence's labels for a
// single tag type and report malformed input through *FormatError.
package tagscheme

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/seqtag/seqtag/common"
	"github.com/ZanzyTHEbar/seqtag/seqtag/label"
)

// Outside is the value of a tag that is not part of any span.
const Outside = "O"

// Scheme names a target tagging convention.
type Scheme string

const (
	SchemeIOB   Scheme = "iob"
	SchemeIOBES Scheme = "iobes"
)

// FormatError reports the first tag that does not fit the expected scheme.
type FormatError struct {
	Scheme Scheme
	Index  int
	Value  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s tag %q at position %d", e.Scheme, e.Value, e.Index)
}

// Unwrap lets callers match any FormatError with errors.Is(err, common.ErrFormat).
func (e *FormatError) Unwrap() error { return common.ErrFormat }

// IOB2 checks that tags are valid IOB and rewrites IOB1 tags to IOB2: an I- tag
// that opens an entity becomes B-. Nothing is modified when an error is returned.
func IOB2(tags []label.Label) error {
	values := make([]string, len(tags))
	for i, tag := range tags {
		values[i] = tag.Value
	}

	for i, value := range values {
		if value == Outside {
			continue
		}
		parts := strings.Split(value, "-")
		if len(parts) != 2 || (parts[0] != "I" && parts[0] != "B") {
			return &FormatError{Scheme: SchemeIOB, Index: i, Value: value}
		}
		if parts[0] == "B" {
			continue
		}
		if i == 0 || values[i-1] == Outside || values[i-1][1:] != value[1:] {
			values[i] = "B" + value[1:]
		}
	}

	commit(tags, values)
	return nil
}

// IOBES rewrites IOB2 tags to IOBES. The input is expected to be IOB2 already.
// B- becomes S- and I- becomes E- unless the next tag continues the same entity
// with I-. Nothing is modified when an error is returned.
func IOBES(tags []label.Label) error {
	values := make([]string, len(tags))
	for i, tag := range tags {
		prefix, suffix, ok := strings.Cut(tag.Value, "-")
		switch {
		case tag.Value == Outside:
			values[i] = tag.Value
		case ok && prefix == "B":
			if continues(tags, i, suffix) {
				values[i] = tag.Value
			} else {
				values[i] = "S-" + suffix
			}
		case ok && prefix == "I":
			if continues(tags, i, suffix) {
				values[i] = tag.Value
			} else {
				values[i] = "E-" + suffix
			}
		default:
			return &FormatError{Scheme: SchemeIOBES, Index: i, Value: tag.Value}
		}
	}

	commit(tags, values)
	return nil
}

// Convert normalizes tags to the target scheme. IOBES conversion runs IOB2 first.
func Convert(tags []label.Label, scheme Scheme) error {
	switch scheme {
	case SchemeIOB:
		return IOB2(tags)
	case SchemeIOBES:
		if err := IOB2(tags); err != nil {
			return err
		}
		return IOBES(tags)
	default:
		return common.Validationf("unknown tag scheme %q", scheme)
	}
}

// continues reports whether the tag after position i is I- with the given suffix.
func continues(tags []label.Label, i int, suffix string) bool {
	if i+1 >= len(tags) {
		return false
	}
	prefix, next, ok := strings.Cut(tags[i+1].Value, "-")
	return ok && prefix == "I" && next == suffix
}

func commit(tags []label.Label, values []string) {
	for i := range tags {
		tags[i].Value = values[i]
	}
}
