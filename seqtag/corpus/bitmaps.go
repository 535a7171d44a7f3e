package corpus

import (
	"github.com/ZanzyTHEbar/seqtag/seqtag/dictionary"

	roaring "github.com/RoaringBitmap/roaring"
)

// LabelIndex maps each sentence label to the bitmap of positions of the
// sentences carrying it. Positions count from 0 in source order.
type LabelIndex struct {
	labels  *dictionary.Dictionary
	bitmaps map[uint32]*roaring.Bitmap
	size    int
}

// NewLabelIndex indexes the labels of every sentence in src.
func NewLabelIndex(src Source) *LabelIndex {
	li := &LabelIndex{
		labels:  dictionary.New(false),
		bitmaps: make(map[uint32]*roaring.Bitmap),
	}
	pos := uint32(0)
	for s := range orEmpty(src).Sentences() {
		for _, l := range s.Labels() {
			li.add(l.Value, pos)
		}
		pos++
	}
	li.size = int(pos)
	return li
}

func (li *LabelIndex) add(value string, pos uint32) {
	id := uint32(li.labels.Add(value))
	bm, ok := li.bitmaps[id]
	if !ok {
		bm = roaring.New()
		li.bitmaps[id] = bm
	}
	bm.Add(pos)
}

// Len is the number of indexed sentences.
func (li *LabelIndex) Len() int { return li.size }

// Labels returns the label values in first-seen order.
func (li *LabelIndex) Labels() []string { return li.labels.Items() }

// Count returns how many sentences carry label.
func (li *LabelIndex) Count(label string) int {
	bm := li.bitmap(label)
	if bm == nil {
		return 0
	}
	return int(bm.GetCardinality())
}

// Counts returns the sentence count per label.
func (li *LabelIndex) Counts() map[string]int {
	out := make(map[string]int, li.labels.Len())
	for _, label := range li.labels.Items() {
		out[label] = li.Count(label)
	}
	return out
}

// WithLabels returns the positions of sentences carrying all of labels. No
// labels, or any unknown label, yields an empty bitmap.
func (li *LabelIndex) WithLabels(labels ...string) *roaring.Bitmap {
	if len(labels) == 0 {
		return roaring.New()
	}
	res := clone(li.bitmap(labels[0]))
	for _, label := range labels[1:] {
		bm := li.bitmap(label)
		if bm == nil {
			return roaring.New()
		}
		res.And(bm)
	}
	return res
}

// Select returns the sentences of src at the positions set in bm.
func Select(src Source, bm *roaring.Bitmap) Sentences {
	out := Sentences{}
	pos := uint32(0)
	for s := range orEmpty(src).Sentences() {
		if bm.Contains(pos) {
			out = append(out, s)
		}
		pos++
	}
	return out
}

func (li *LabelIndex) bitmap(label string) *roaring.Bitmap {
	if !li.labels.Contains(label) {
		return nil
	}
	return li.bitmaps[uint32(li.labels.IndexOf(label))]
}

func clone(b *roaring.Bitmap) *roaring.Bitmap {
	c := roaring.New()
	if b != nil {
		c.Or(b)
	}
	return c
}
