package dictionary

import (
	"testing"

	"github.com/ZanzyTHEbar/seqtag/seqtag/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary(t *testing.T) {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{"UnknownSentinel", testDictionaryUnknownSentinel},
		{"WithoutUnknown", testDictionaryWithoutUnknown},
		{"AddIsIdempotent", testDictionaryAddIsIdempotent},
		{"RoundTripItems", testDictionaryRoundTripItems},
		{"ItemOutOfRange", testDictionaryItemOutOfRange},
		{"InvalidUTF8", testDictionaryInvalidUTF8},
		{"PrefixLookup", testDictionaryPrefixLookup},
		{"EntityTypes", testDictionaryEntityTypes},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.test)
	}
}

func testDictionaryUnknownSentinel(t *testing.T) {
	d := New(true)
	assert.Equal(t, 1, d.Len())
	item, err := d.Item(0)
	require.NoError(t, err)
	assert.Equal(t, Unknown, item)

	id := d.Add("PER")
	assert.Equal(t, 1, id)
	assert.Equal(t, 0, d.IndexOf("never-seen"))
	assert.Equal(t, 1, d.IndexOf("PER"))
}

func testDictionaryWithoutUnknown(t *testing.T) {
	d := New(false)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.Add("positive"))
	assert.Equal(t, 1, d.Add("negative"))

	// unseen items share id 0 with the first item in this mode
	assert.Equal(t, 0, d.IndexOf("neutral"))
	assert.False(t, d.Contains("neutral"))
	assert.True(t, d.Contains("positive"))
}

func testDictionaryAddIsIdempotent(t *testing.T) {
	d := New(true)
	first := d.Add("Berlin")
	size := d.Len()
	second := d.Add("Berlin")
	assert.Equal(t, first, second)
	assert.Equal(t, size, d.Len())
}

func testDictionaryRoundTripItems(t *testing.T) {
	d := New(true)
	items := []string{"the", "", "Zürich", "東京", "O", "B-PER", "<START>"}
	for _, s := range items {
		got, err := d.Item(d.Add(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, append([]string{Unknown}, items...), d.Items())
}

func testDictionaryItemOutOfRange(t *testing.T) {
	d := New(false)
	d.Add("a")
	for _, id := range []int{-1, 1, 100} {
		_, err := d.Item(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrOutOfRange)
	}
}

func testDictionaryInvalidUTF8(t *testing.T) {
	d := New(false)
	items := []string{"caf\xe9", "\xff", "\xfe", "caf\uFFFD", "\uFFFD"}
	for i, item := range items {
		assert.Equal(t, i, d.Add(item))
	}
	assert.Equal(t, len(items), d.Len())

	for i, item := range items {
		got, err := d.Item(d.IndexOf(item))
		require.NoError(t, err)
		assert.Equal(t, item, got)
		assert.Equal(t, i, d.Add(item))
	}
}

func testDictionaryPrefixLookup(t *testing.T) {
	d := New(true)
	for _, tag := range []string{"O", "B-PER", "I-PER", "B-LOC", "S-ORG", "E-PER"} {
		d.Add(tag)
	}
	assert.Equal(t, []string{"B-LOC", "B-PER"}, d.WithPrefix("B-"))
	assert.Empty(t, d.WithPrefix("X-"))
	assert.Len(t, d.WithPrefix(""), d.Len())
}

func testDictionaryEntityTypes(t *testing.T) {
	d := New(true)
	for _, tag := range []string{"O", "B-PER", "I-PER", "S-PER", "S-ORG", "B-LOC", "B-"} {
		d.Add(tag)
	}
	assert.Equal(t, []string{"LOC", "ORG", "PER"}, d.EntityTypes())
}
