// Package loader reads nucleotide sequences from FASTA and GenBank files.
//
// A file must contain exactly one record. Every failure, including I/O
// errors, is reported as a *ParseError whose message is suitable for
// showing to the user.
package loader

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"cpgislands/pkg/logging"
)

const subsystem = "Loader"

// DefaultMaxSize bounds the size of files the loader accepts.
const DefaultMaxSize = 64 << 20

// Format identifies a sequence file format.
type Format string

const (
	FormatUnknown Format = ""
	FormatFASTA   Format = "fasta"
	FormatGenBank Format = "genbank"
)

// ParseError reports a file that could not be turned into a sequence.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(path string, err error, format string, args ...interface{}) *ParseError {
	return &ParseError{Path: path, Message: fmt.Sprintf(format, args...), Err: err}
}

// Loader loads sequence files from disk.
type Loader struct {
	// MaxSize is the largest file accepted, in bytes. Zero means DefaultMaxSize.
	MaxSize int64
}

// New returns a Loader with default limits.
func New() *Loader {
	return &Loader{MaxSize: DefaultMaxSize}
}

// Load returns the sequence of the single record stored at path.
func (l *Loader) Load(path string) (string, error) {
	maxSize := l.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", parseErrorf(path, err, "cannot read %s: %v", path, err)
	}
	if info.IsDir() {
		return "", parseErrorf(path, nil, "%s is a directory", path)
	}
	if info.Size() == 0 {
		return "", parseErrorf(path, nil, "%s is empty", path)
	}
	if info.Size() > maxSize {
		return "", parseErrorf(path, nil, "%s is too large (%d bytes, limit %d)", path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", parseErrorf(path, err, "cannot read %s: %v", path, err)
	}

	seq, err := Parse(data)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Path = path
		}
		logging.Debug(subsystem, "Failed to parse %s: %v", path, err)
		return "", err
	}

	logging.Info(subsystem, "Loaded %d bases from %s", len(seq), path)
	return seq, nil
}

// Parse detects the format of data and returns the sequence of its single
// record.
func Parse(data []byte) (string, error) {
	if !isText(data) {
		mtype := mimetype.Detect(data)
		return "", parseErrorf("", nil, "not a text sequence file (detected %s)", mtype.String())
	}

	format := Detect(data)
	switch format {
	case FormatFASTA:
		return parseFASTA(bytes.NewReader(data))
	case FormatGenBank:
		return parseGenBank(bytes.NewReader(data))
	default:
		return "", parseErrorf("", nil, "unrecognized sequence file format: expected FASTA ('>') or GenBank ('LOCUS')")
	}
}

// Detect sniffs the format from the first non-blank line.
func Detect(data []byte) Format {
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case line[0] == '>':
			return FormatFASTA
		case bytes.HasPrefix(line, []byte("LOCUS")):
			return FormatGenBank
		default:
			return FormatUnknown
		}
	}
	return FormatUnknown
}

// isText reports whether mimetype classifies data as plain text or a
// subtype of it.
func isText(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
