package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmahugh/backup-verifier/pkg/listing"
)

// csvHeader is the column layout of the normalized tabular format.
var csvHeader = []string{"folder", "filename", "timestamp", "bytes"}

// FromCSV builds a store from a previously-normalized tabular file.
// A leading header row is recognized and skipped; malformed rows are
// counted and skipped, like malformed listing lines.
func FromCSV(name string, r io.Reader) (*Store, int, error) {
	st := New(name)
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	skipped := 0
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			first = false
			continue
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("read %s: %w", name, err)
		}
		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}
		rec, err := recordFromRow(row)
		if err != nil {
			skipped++
			continue
		}
		st.Add(rec)
	}
	return st, skipped, nil
}

func isHeader(row []string) bool {
	if len(row) != len(csvHeader) {
		return false
	}
	for i, field := range row {
		if !strings.EqualFold(strings.TrimSpace(field), csvHeader[i]) {
			return false
		}
	}
	return true
}

func recordFromRow(row []string) (listing.Record, error) {
	if len(row) != len(csvHeader) {
		return listing.Record{}, fmt.Errorf("expected %d fields, got %d", len(csvHeader), len(row))
	}
	ts, err := time.Parse(TimeLayout, row[2])
	if err != nil {
		return listing.Record{}, fmt.Errorf("bad timestamp %q: %w", row[2], err)
	}
	size, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
	if err != nil {
		return listing.Record{}, fmt.Errorf("bad size %q: %w", row[3], err)
	}
	if size < 0 {
		return listing.Record{}, fmt.Errorf("negative size %d", size)
	}
	return listing.Record{Folder: row[0], Name: row[1], Timestamp: ts, Size: size}, nil
}

// Writer emits records in the normalized CSV format. Fields holding
// commas or quotes come out quoted per the csv package's rules.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w and writes the header row immediately.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, err
	}
	return &Writer{csv: cw}, nil
}

func (w *Writer) Write(rec listing.Record) error {
	return w.csv.Write([]string{
		rec.Folder,
		rec.Name,
		rec.Timestamp.Format(TimeLayout),
		strconv.FormatInt(rec.Size, 10),
	})
}

// Flush drains buffered rows and reports any deferred write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
