package loader

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// parseFASTA reads exactly one FASTA record from r.
func parseFASTA(r io.Reader) (string, error) {
	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var records []*linear.Seq
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return "", parseErrorf("", nil, "unexpected FASTA record type %T", sc.Seq())
		}
		records = append(records, s)
		if len(records) > 1 {
			return "", parseErrorf("", nil, "more than one record found")
		}
	}
	if err := sc.Error(); err != nil {
		return "", parseErrorf("", err, "malformed FASTA: %v", err)
	}
	if len(records) == 0 {
		return "", parseErrorf("", nil, "no records found")
	}

	letters := records[0].Seq
	if len(letters) == 0 {
		return "", parseErrorf("", nil, "record %q has no sequence", records[0].Name())
	}
	b := make([]byte, len(letters))
	for i, l := range letters {
		b[i] = byte(l)
	}
	return string(b), nil
}
