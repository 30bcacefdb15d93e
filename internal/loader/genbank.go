package loader

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// parseGenBank reads exactly one GenBank flat-file record from r and returns
// the bases of its ORIGIN section. Header and feature tables are skipped.
func parseGenBank(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		records  int
		inRecord bool
		inOrigin bool
		seq      strings.Builder
		lineNo   int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "LOCUS"):
			if inRecord {
				return "", parseErrorf("", nil, "line %d: LOCUS before end of previous record", lineNo)
			}
			if records == 1 {
				return "", parseErrorf("", nil, "more than one record found")
			}
			inRecord = true
		case trimmed == "//":
			if !inRecord {
				return "", parseErrorf("", nil, "line %d: record terminator without LOCUS", lineNo)
			}
			if !inOrigin {
				return "", parseErrorf("", nil, "record has no ORIGIN section")
			}
			inRecord, inOrigin = false, false
			records++
		case strings.HasPrefix(line, "ORIGIN"):
			if !inRecord {
				return "", parseErrorf("", nil, "line %d: ORIGIN outside a record", lineNo)
			}
			inOrigin = true
		case inOrigin:
			if err := appendOriginLine(&seq, trimmed, lineNo); err != nil {
				return "", err
			}
		case !inRecord && trimmed != "":
			return "", parseErrorf("", nil, "line %d: unexpected content outside a record", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return "", parseErrorf("", err, "malformed GenBank: %v", err)
	}
	if inRecord {
		return "", parseErrorf("", nil, "premature end of file: missing '//' terminator")
	}
	if records == 0 {
		return "", parseErrorf("", nil, "no records found")
	}
	if seq.Len() == 0 {
		return "", parseErrorf("", nil, "record has an empty ORIGIN section")
	}
	return seq.String(), nil
}

// appendOriginLine consumes one "   61 gatcctccat atacaacggt ..." line.
func appendOriginLine(seq *strings.Builder, line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if !isDigits(fields[0]) {
		return parseErrorf("", nil, "line %d: ORIGIN line must start with a position", lineNo)
	}
	for _, chunk := range fields[1:] {
		for _, r := range chunk {
			if !unicode.IsLetter(r) {
				return parseErrorf("", nil, "line %d: invalid character %q in sequence data", lineNo, r)
			}
		}
		seq.WriteString(chunk)
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
