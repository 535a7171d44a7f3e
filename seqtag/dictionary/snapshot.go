package dictionary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/seqtag/seqtag/common"

	"github.com/armon/go-radix"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
)

const (
	snapshotMagic = "SQDT"

	// versionLegacy snapshots store one byte per character (ISO-8859-1).
	versionLegacy uint32 = 1
	// versionUTF8 snapshots store UTF-8 items. Writers of this version only
	// produced valid UTF-8, so invalid items are read as ISO-8859-1.
	versionUTF8 uint32 = 2
	// versionRaw snapshots store item bytes verbatim.
	versionRaw uint32 = 3

	maxItemLen = 1 << 24
	// maxPrealloc caps capacity hints taken from counts in the file.
	maxPrealloc = 1 << 16
)

// Save writes the dictionary snapshot to path.
func (d *Dictionary) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := d.WriteTo(w); err != nil {
		f.Close()
		return common.WrapError(err, "failed to write dictionary snapshot %s", path)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a dictionary snapshot written by Save.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := &Dictionary{}
	if _, err := d.ReadFrom(bufio.NewReader(f)); err != nil {
		return nil, common.WrapError(err, "failed to load dictionary snapshot %s", path)
	}
	return d, nil
}

// WriteTo serializes the dictionary. Format (little-endian):
// [magic 'SQDT'] [u32 version] [16 byte id]
// [u32 n] n * ([u32 len] [bytes])               idx2item
// [u32 m] m * ([u32 len] [bytes] [u32 id])      item2idx
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	u32 := func(v uint32) { _ = binary.Write(cw, binary.LittleEndian, v) }
	str := func(s string) {
		u32(uint32(len(s)))
		_, _ = io.WriteString(cw, s)
	}

	_, _ = io.WriteString(cw, snapshotMagic)
	u32(versionRaw)
	_, _ = cw.Write(d.id[:])

	u32(uint32(len(d.idx2item)))
	for _, item := range d.idx2item {
		str(item)
	}

	// item2idx is written in id order so snapshots are reproducible
	u32(uint32(len(d.item2idx)))
	for _, item := range d.idx2item {
		str(item)
		u32(uint32(d.item2idx[item]))
	}
	return cw.n, cw.err
}

// ReadFrom replaces the dictionary content with a snapshot read from r. A
// snapshot that ends early is reported as ErrCorruptSnapshot.
func (d *Dictionary) ReadFrom(r io.Reader) (_ int64, err error) {
	cr := &countingReader{r: r}
	defer func() {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("%w: %w", common.ErrCorruptSnapshot, io.ErrUnexpectedEOF)
		}
	}()

	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(cr, magic); err != nil {
		return cr.n, err
	}
	if string(magic) != snapshotMagic {
		return cr.n, fmt.Errorf("%w: bad magic %q", common.ErrCorruptSnapshot, magic)
	}

	var version uint32
	if err := binary.Read(cr, binary.LittleEndian, &version); err != nil {
		return cr.n, err
	}
	if version != versionLegacy && version != versionUTF8 && version != versionRaw {
		return cr.n, fmt.Errorf("%w: unsupported version %d", common.ErrCorruptSnapshot, version)
	}

	var id uuid.UUID
	if _, err := io.ReadFull(cr, id[:]); err != nil {
		return cr.n, err
	}

	var n uint32
	if err := binary.Read(cr, binary.LittleEndian, &n); err != nil {
		return cr.n, err
	}
	idx2item := make([]string, 0, min(n, maxPrealloc))
	for i := uint32(0); i < n; i++ {
		item, err := readItem(cr, version)
		if err != nil {
			return cr.n, err
		}
		idx2item = append(idx2item, item)
	}

	var m uint32
	if err := binary.Read(cr, binary.LittleEndian, &m); err != nil {
		return cr.n, err
	}
	item2idx := make(map[string]int, min(m, maxPrealloc))
	for i := uint32(0); i < m; i++ {
		item, err := readItem(cr, version)
		if err != nil {
			return cr.n, err
		}
		var idx uint32
		if err := binary.Read(cr, binary.LittleEndian, &idx); err != nil {
			return cr.n, err
		}
		item2idx[item] = int(idx)
	}

	if err := verify(idx2item, item2idx); err != nil {
		return cr.n, err
	}

	d.id = id
	d.idx2item = idx2item
	d.item2idx = item2idx
	d.prefixes = radix.New()
	for i, item := range idx2item {
		d.prefixes.Insert(item, i)
	}
	return cr.n, nil
}

func readItem(r io.Reader, version uint32) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > maxItemLen {
		return "", fmt.Errorf("%w: item length %d", common.ErrCorruptSnapshot, size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	if version == versionRaw || (version == versionUTF8 && utf8.Valid(buf)) {
		return string(buf), nil
	}
	if version == versionUTF8 {
		slog.Warn("Dictionary item is not valid UTF-8, decoding as ISO-8859-1", "bytes", len(buf))
	}
	return decodeLatin1(buf)
}

func decodeLatin1(buf []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCorruptSnapshot, err)
	}
	return string(out), nil
}

// verify checks that idx2item and item2idx describe the same bijection.
func verify(idx2item []string, item2idx map[string]int) error {
	if len(idx2item) != len(item2idx) {
		return fmt.Errorf("%w: %d items but %d ids", common.ErrCorruptSnapshot, len(idx2item), len(item2idx))
	}
	for i, item := range idx2item {
		idx, ok := item2idx[item]
		if !ok || idx != i {
			return fmt.Errorf("%w: item %q has id %d, expected %d", common.ErrCorruptSnapshot, item, idx, i)
		}
	}
	return nil
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
