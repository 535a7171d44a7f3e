// Package dictionary interns strings into dense integer ids.
//
// Ids are assigned in insertion order starting at 0 and are never reused. When the
// dictionary is created with an unknown sentinel, id 0 is reserved for Unknown and
// lookups of unseen items resolve to it. Items are byte strings and are stored
// verbatim, whether or not they are valid UTF-8.
package dictionary

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/seqtag/seqtag/common"

	"github.com/armon/go-radix"
	"github.com/google/uuid"
)

// Unknown is the sentinel item stored at id 0 by New(true).
const Unknown = "<unk>"

// Dictionary is a bidirectional string <-> id interner. It is not safe for
// concurrent mutation.
type Dictionary struct {
	id       uuid.UUID
	idx2item []string
	item2idx map[string]int
	prefixes *radix.Tree
}

// New creates an empty dictionary, optionally reserving id 0 for Unknown.
func New(addUnk bool) *Dictionary {
	d := &Dictionary{
		id:       uuid.New(),
		item2idx: make(map[string]int),
		prefixes: radix.New(),
	}
	if addUnk {
		d.Add(Unknown)
	}
	return d
}

// ID identifies the dictionary across snapshots.
func (d *Dictionary) ID() uuid.UUID { return d.id }

// Add returns the id of item, assigning the next free id if it is new.
func (d *Dictionary) Add(item string) int {
	if idx, ok := d.item2idx[item]; ok {
		return idx
	}
	d.idx2item = append(d.idx2item, item)
	idx := len(d.idx2item) - 1
	d.item2idx[item] = idx
	d.prefixes.Insert(item, idx)
	return idx
}

// IndexOf returns the id of item, or 0 if it is unknown. Without the unknown
// sentinel 0 is also the id of the first item, so callers must know the mode.
func (d *Dictionary) IndexOf(item string) int {
	if idx, ok := d.item2idx[item]; ok {
		return idx
	}
	return 0
}

// Contains reports whether item has an id.
func (d *Dictionary) Contains(item string) bool {
	_, ok := d.item2idx[item]
	return ok
}

// Item returns the item stored under id.
func (d *Dictionary) Item(id int) (string, error) {
	if id < 0 || id >= len(d.idx2item) {
		return "", common.OutOfRangef("dictionary id %d (size %d)", id, len(d.idx2item))
	}
	return d.idx2item[id], nil
}

// Items returns all items in id order.
func (d *Dictionary) Items() []string {
	out := make([]string, len(d.idx2item))
	copy(out, d.idx2item)
	return out
}

func (d *Dictionary) Len() int { return len(d.idx2item) }

// WithPrefix returns all items starting with prefix in lexicographic order.
func (d *Dictionary) WithPrefix(prefix string) []string {
	var out []string
	d.prefixes.WalkPrefix(prefix, func(key string, _ interface{}) bool {
		out = append(out, key)
		return false
	})
	slog.Debug("Dictionary prefix walk", "prefix", prefix, "matches", len(out))
	return out
}

// EntityTypes returns the distinct entity types of the span-opening tags
// (B- and S-) held by a tag dictionary, in lexicographic order.
func (d *Dictionary) EntityTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, prefix := range []string{"B-", "S-"} {
		for _, item := range d.WithPrefix(prefix) {
			suffix := strings.TrimPrefix(item, prefix)
			if suffix == "" || seen[suffix] {
				continue
			}
			seen[suffix] = true
			types = append(types, suffix)
		}
	}
	sort.Strings(types)
	return types
}

