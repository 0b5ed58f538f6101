package store

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/engine/errs"
)

// DictEntry is the dictionary's view of one term: where its posting list
// begins in the postings blob and how many documents contain it.
type DictEntry struct {
	PostingOffset uint64
	DocFreq       uint32
}

// Index is a fully loaded, read-only index ready for query evaluation. All
// three files are parsed eagerly except the postings blob, which is kept as
// raw bytes and decoded lazily per query by internal/postings.
type Index struct {
	Docs     []DocRecord
	Dict     map[string]DictEntry
	Postings []byte
}

// DocRecord is one decoded entry of the docs table.
type DocRecord struct {
	URL   string
	Title string
}

// Load reads the three index files from dir and returns the assembled
// in-memory Index. The three files are parsed in parallel via errgroup —
// this is index loading, not query evaluation, and completes before the
// single-threaded query phase begins.
func Load(dir string) (*Index, error) {
	var docs []DocRecord
	var dict map[string]DictEntry
	var postings []byte

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		d, err := loadDocs(filepath.Join(dir, docsFileName))
		if err != nil {
			return err
		}
		docs = d
		return nil
	})
	g.Go(func() error {
		d, err := loadDict(filepath.Join(dir, dictFileName))
		if err != nil {
			return err
		}
		dict = d
		return nil
	})
	g.Go(func() error {
		p, err := loadPostings(filepath.Join(dir, postFileName))
		if err != nil {
			return err
		}
		postings = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Index{Docs: docs, Dict: dict, Postings: postings}, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrIOError, "reading %s: %v", path, err)
	}
	return data, nil
}

func checkMagic(data []byte, path, want string) error {
	if len(data) < len(want) || string(data[:len(want)]) != want {
		return errs.Wrapf(errs.ErrBadFormat, "%s: bad magic", path)
	}
	return nil
}

func checkVersion(v uint16, path string) error {
	if v != FormatVersion {
		return errs.Wrapf(errs.ErrBadFormat, "%s: unsupported version %d", path, v)
	}
	return nil
}

func loadDocs(path string) ([]DocRecord, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkMagic(data, path, docsMagic); err != nil {
		return nil, err
	}
	if len(data) < 10 {
		return nil, errs.Wrapf(errs.ErrBadFormat, "%s: truncated header", path)
	}
	version := binary.LittleEndian.Uint16(data[4:6])
	if err := checkVersion(version, path); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(data[6:10])

	offsetsStart := 10
	offsetsEnd := offsetsStart + 8*int(n)
	if len(data) < offsetsEnd {
		return nil, errs.Wrapf(errs.ErrBadFormat, "%s: truncated offsets table", path)
	}

	docs := make([]DocRecord, n)
	for i := uint32(0); i < n; i++ {
		off := binary.LittleEndian.Uint64(data[offsetsStart+8*int(i):])
		rec, err := decodeDocRecord(data, int(off), path)
		if err != nil {
			return nil, err
		}
		docs[i] = rec
	}
	return docs, nil
}

func decodeDocRecord(data []byte, off int, path string) (DocRecord, error) {
	if off+2 > len(data) {
		return DocRecord{}, errs.Wrapf(errs.ErrBadFormat, "%s: truncated record", path)
	}
	urlLen := int(binary.LittleEndian.Uint16(data[off:]))
	off += 2
	if off+urlLen+2 > len(data) {
		return DocRecord{}, errs.Wrapf(errs.ErrBadFormat, "%s: truncated record", path)
	}
	url := string(data[off : off+urlLen])
	off += urlLen
	titleLen := int(binary.LittleEndian.Uint16(data[off:]))
	off += 2
	if off+titleLen > len(data) {
		return DocRecord{}, errs.Wrapf(errs.ErrBadFormat, "%s: truncated record", path)
	}
	title := string(data[off : off+titleLen])
	return DocRecord{URL: url, Title: title}, nil
}

func loadDict(path string) (map[string]DictEntry, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkMagic(data, path, dictMagic); err != nil {
		return nil, err
	}
	if len(data) < 10 {
		return nil, errs.Wrapf(errs.ErrBadFormat, "%s: truncated header", path)
	}
	version := binary.LittleEndian.Uint16(data[4:6])
	if err := checkVersion(version, path); err != nil {
		return nil, err
	}
	termCount := binary.LittleEndian.Uint32(data[6:10])

	dict := make(map[string]DictEntry, termCount)
	off := 10
	for i := uint32(0); i < termCount; i++ {
		if off+1 > len(data) {
			return nil, errs.Wrapf(errs.ErrBadFormat, "%s: truncated entry", path)
		}
		termLen := int(data[off])
		off++
		if off+termLen+12 > len(data) {
			return nil, errs.Wrapf(errs.ErrBadFormat, "%s: truncated entry", path)
		}
		term := string(data[off : off+termLen])
		off += termLen
		postingOffset := binary.LittleEndian.Uint64(data[off:])
		off += 8
		docFreq := binary.LittleEndian.Uint32(data[off:])
		off += 4
		dict[term] = DictEntry{PostingOffset: postingOffset, DocFreq: docFreq}
	}
	return dict, nil
}

func loadPostings(path string) ([]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkMagic(data, path, postMagic); err != nil {
		return nil, err
	}
	if len(data) < 6 {
		return nil, errs.Wrapf(errs.ErrBadFormat, "%s: truncated header", path)
	}
	version := binary.LittleEndian.Uint16(data[4:6])
	if err := checkVersion(version, path); err != nil {
		return nil, err
	}
	return data, nil
}
