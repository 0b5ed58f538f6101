package store

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/compress"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/engine/errs"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/index"
)

// Write serializes docs and terms into the three index files
// (index.docs, index.dict, index.postings) in dir. Each file is written to
// a .tmp path and renamed into place only once its own contents are
// complete; Write does not publish any file until all three have been
// built in memory successfully, so a failure while building leaves no file
// under the final names. The three renames are not atomic as a group: if
// writing or renaming index.dict or index.postings fails, the files already
// renamed stay in place under their final names.
func Write(dir string, docs []index.Doc, terms map[string]*index.Term) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrapf(errs.ErrIOError, "creating index directory %s: %v", dir, err)
	}

	postOffsets := make(map[string]uint64, len(terms))
	postBuf, err := buildPostingsBlob(terms, postOffsets)
	if err != nil {
		return err
	}

	docsBuf, err := buildDocsBlob(docs)
	if err != nil {
		return err
	}

	dictBuf, err := buildDictBlob(terms, postOffsets)
	if err != nil {
		return err
	}

	if err := writeAtomic(filepath.Join(dir, docsFileName), docsBuf); err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(dir, dictFileName), dictBuf); err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(dir, postFileName), postBuf); err != nil {
		return err
	}
	return nil
}

func writeAtomic(finalPath string, data []byte) error {
	tmpPath := finalPath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return errs.Wrapf(errs.ErrIOError, "creating %s: %v", tmpPath, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errs.Wrapf(errs.ErrIOError, "writing %s: %v", tmpPath, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errs.Wrapf(errs.ErrIOError, "syncing %s: %v", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		return errs.Wrapf(errs.ErrIOError, "closing %s: %v", tmpPath, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return errs.Wrapf(errs.ErrIOError, "renaming %s: %v", tmpPath, err)
	}
	return nil
}

func buildDocsBlob(docs []index.Doc) ([]byte, error) {
	n := len(docs)
	records := make([][]byte, n)
	for i, d := range docs {
		if len(d.URL) > maxFieldLen || len(d.Title) > maxFieldLen {
			return nil, errs.Wrapf(errs.ErrBadFormat, "doc %d: url/title exceeds %d bytes", i, maxFieldLen)
		}
		rec := make([]byte, 0, 4+len(d.URL)+len(d.Title))
		rec = appendU16(rec, uint16(len(d.URL)))
		rec = append(rec, d.URL...)
		rec = appendU16(rec, uint16(len(d.Title)))
		rec = append(rec, d.Title...)
		records[i] = rec
	}

	headerSize := 4 + 2 + 4
	offsetsSize := 8 * n
	base := headerSize + offsetsSize

	offsets := make([]uint64, n)
	off := base
	for i, rec := range records {
		offsets[i] = uint64(off)
		off += len(rec)
	}

	out := make([]byte, 0, off)
	out = append(out, docsMagic...)
	out = appendU16(out, FormatVersion)
	out = appendU32(out, uint32(n))
	for _, o := range offsets {
		out = appendU64(out, o)
	}
	for _, rec := range records {
		out = append(out, rec...)
	}
	return out, nil
}

func buildDictBlob(terms map[string]*index.Term, postOffsets map[string]uint64) ([]byte, error) {
	out := make([]byte, 0, 1024)
	out = append(out, dictMagic...)
	out = appendU16(out, FormatVersion)
	out = appendU32(out, uint32(len(terms)))
	for term, t := range terms {
		if len(term) > maxTermLen {
			return nil, errs.Wrapf(errs.ErrBadFormat, "term %q exceeds %d bytes", term, maxTermLen)
		}
		out = append(out, byte(len(term)))
		out = append(out, term...)
		out = appendU64(out, postOffsets[term])
		out = appendU32(out, uint32(len(t.Postings)))
	}
	return out, nil
}

func buildPostingsBlob(terms map[string]*index.Term, offsets map[string]uint64) ([]byte, error) {
	out := make([]byte, 0, 4096)
	out = append(out, postMagic...)
	out = appendU16(out, FormatVersion)
	for term, t := range terms {
		offsets[term] = uint64(len(out))
		out = compress.EncodeVarbyte(uint32(len(t.Postings)), out)
		prevDoc := uint32(0)
		for _, entry := range t.Postings {
			out = compress.EncodeVarbyte(uint32(entry.DocID)-prevDoc, out)
			prevDoc = uint32(entry.DocID)
			out = compress.EncodeVarbyte(uint32(len(entry.Positions)), out)
			prevPos := uint32(0)
			for _, p := range entry.Positions {
				out = compress.EncodeVarbyte(uint32(p)-prevPos, out)
				prevPos = uint32(p)
			}
		}
	}
	return out, nil
}

func appendU16(out []byte, v uint16) []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return append(out, buf...)
}

func appendU32(out []byte, v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return append(out, buf...)
}

func appendU64(out []byte, v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return append(out, buf...)
}
