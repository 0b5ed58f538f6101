// Package store serializes an internal/index.Builder to the three-file
// binary index format and loads it back for query evaluation. Grounded on
// the teacher's internal/indexer/segment package (atomic tmp+rename publish,
// encoding/binary for fixed-width fields) but with the exact byte layout of
// the on-disk format, not the teacher's single-file JSON-framed segment.
package store

const (
	docsMagic = "DOCS"
	dictMagic = "DICT"
	postMagic = "POST"

	// FormatVersion is the only version this package writes or accepts.
	FormatVersion uint16 = 3

	docsFileName = "index.docs"
	dictFileName = "index.dict"
	postFileName = "index.postings"

	maxFieldLen = 1<<16 - 1 // u16-prefixed url/title length cap
	maxTermLen  = 1<<8 - 1  // u8-prefixed term length cap
)
