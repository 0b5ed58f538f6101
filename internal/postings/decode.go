package postings

import (
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/compress"
)

// DocPosting is one decoded (doc_id, positions) entry.
type DocPosting struct {
	DocID     uint32
	Positions []uint32
}

// DocIDs decodes the doc-id list for a term's posting list, starting at
// offset within postings, skipping over but not retaining position data. A
// term absent from the dictionary should be looked up by the caller before
// calling DocIDs; this function only decodes bytes already located.
func DocIDs(postingsBlob []byte, offset uint64, docFreq uint32) ([]uint32, error) {
	off := int(offset)
	// the doc_freq varbyte at the front of each term's posting list is
	// redundant with the dictionary's own doc_freq field; skip past it.
	_, next, err := compress.DecodeVarbyte(postingsBlob, off)
	if err != nil {
		return nil, err
	}
	off = next

	out := make([]uint32, 0, docFreq)
	prevDoc := uint32(0)
	for i := uint32(0); i < docFreq; i++ {
		deltaDoc, next, err := compress.DecodeVarbyte(postingsBlob, off)
		if err != nil {
			return nil, err
		}
		off = next
		prevDoc += deltaDoc
		out = append(out, prevDoc)

		nPos, next, err := compress.DecodeVarbyte(postingsBlob, off)
		if err != nil {
			return nil, err
		}
		off = next
		for p := uint32(0); p < nPos; p++ {
			_, next, err := compress.DecodeVarbyte(postingsBlob, off)
			if err != nil {
				return nil, err
			}
			off = next
		}
	}
	return out, nil
}

// DocPositions decodes a term's posting list fully into (doc_id,
// position_list) entries, both levels delta-decoded.
func DocPositions(postingsBlob []byte, offset uint64, docFreq uint32) ([]DocPosting, error) {
	off := int(offset)
	_, next, err := compress.DecodeVarbyte(postingsBlob, off)
	if err != nil {
		return nil, err
	}
	off = next

	out := make([]DocPosting, 0, docFreq)
	prevDoc := uint32(0)
	for i := uint32(0); i < docFreq; i++ {
		deltaDoc, next, err := compress.DecodeVarbyte(postingsBlob, off)
		if err != nil {
			return nil, err
		}
		off = next
		prevDoc += deltaDoc

		nPos, next, err := compress.DecodeVarbyte(postingsBlob, off)
		if err != nil {
			return nil, err
		}
		off = next

		positions, next, err := compress.DecodeDeltaVarbyte(postingsBlob, off, int(nPos))
		if err != nil {
			return nil, err
		}
		off = next

		out = append(out, DocPosting{DocID: prevDoc, Positions: positions})
	}
	return out, nil
}
