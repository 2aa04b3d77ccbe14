package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the fixed timestamp form of a file entry,
// e.g. "12/08/2016  02:33 PM". Minute granularity, no seconds.
const TimestampLayout = "01/02/2006  03:04 PM"

// Kind classifies one line of a raw directory listing.
type Kind int

const (
	// KindNoise carries no file or folder data: volume labels,
	// <DIR> entries, per-folder and per-drive summary lines.
	KindNoise Kind = iota
	// KindFolder is a "Directory of ..." header.
	KindFolder
	// KindFile is a fixed-column file entry.
	KindFile
)

// Line is the classification of a single listing line.
type Line struct {
	Kind      Kind
	Folder    string    // KindFolder only
	Name      string    // KindFile only
	Timestamp time.Time // KindFile only
	Size      int64     // KindFile only
}

// FormatError flags a line that is neither noise, a folder header,
// nor a well-formed file entry. Callers skip the line and carry on.
type FormatError struct {
	Line   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed listing line %q: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed listing line %q: %s", e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

const folderPrefix = "Directory of "

// ParseLine classifies one listing line, already stripped of line
// terminators and surrounding whitespace. Empty input is noise.
func ParseLine(text string) (Line, error) {
	if text == "" {
		return Line{Kind: KindNoise}, nil
	}

	if strings.Contains(text, " <DIR> ") ||
		strings.Contains(text, "File(s)") ||
		strings.HasSuffix(text, "bytes free") ||
		strings.HasPrefix(text, "Volume ") ||
		strings.HasPrefix(text, "Total Files") {
		return Line{Kind: KindNoise}, nil
	}

	if strings.HasPrefix(text, folderPrefix) {
		return Line{Kind: KindFolder, Folder: text[len(folderPrefix):]}, nil
	}

	return parseEntry(text)
}

// File entries use fixed columns: timestamp in [0:20), size in
// [20:38), filename from 39 on.
func parseEntry(text string) (Line, error) {
	if len(text) < 40 {
		return Line{}, &FormatError{Line: text, Reason: "shorter than the fixed column layout"}
	}

	ts, err := time.Parse(TimestampLayout, text[:20])
	if err != nil {
		return Line{}, &FormatError{Line: text, Reason: "bad timestamp field", Err: err}
	}

	sizeField := strings.ReplaceAll(strings.TrimSpace(text[20:38]), ",", "")
	size, err := strconv.ParseInt(sizeField, 10, 64)
	if err != nil {
		return Line{}, &FormatError{Line: text, Reason: "bad size field", Err: err}
	}
	if size < 0 {
		return Line{}, &FormatError{Line: text, Reason: "negative size"}
	}

	return Line{Kind: KindFile, Name: text[39:], Timestamp: ts, Size: size}, nil
}
