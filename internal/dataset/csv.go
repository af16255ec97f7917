// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads raw metadata tables and writes cleaned snapshots
// as CSV.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-trends/pkg/types"
)

const (
	dateLayout = "2006-01-02"
	utf8BOM    = "\ufeff"
)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("csv input has no header row")

// LoadCSV reads the CSV file at path. See ReadCSV.
func LoadCSV(path string) (types.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ds, err := ReadCSV(f, 0)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses a header row followed by data rows. Ragged rows are
// accepted: missing trailing cells are null and surplus cells are
// dropped. maxRows limits the number of data rows read; 0 reads all.
func ReadCSV(r io.Reader, maxRows int) (types.Dataset, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return types.Dataset{}, ErrNoHeader
		}
		return types.Dataset{}, fmt.Errorf("reading header: %w", err)
	}
	header = cleanHeader(header)

	ds := types.Dataset{Columns: header}
	for maxRows <= 0 || len(ds.Records) < maxRows {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.Dataset{}, fmt.Errorf("reading row %d: %w", len(ds.Records)+1, err)
		}

		rec := make(types.RawRecord, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			if row[i] != "" {
				rec[name] = row[i]
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

// Sample copies the header and the first n data rows of src to dst
// without interpreting them. It returns the number of rows copied.
func Sample(src io.Reader, dst io.Writer, n int) (int, error) {
	cr := newReader(src)
	cw := csv.NewWriter(dst)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrNoHeader
		}
		return 0, fmt.Errorf("reading header: %w", err)
	}
	if err := cw.Write(cleanHeader(header)); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	copied := 0
	for n <= 0 || copied < n {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return copied, fmt.Errorf("reading row %d: %w", copied+1, err)
		}
		if err := cw.Write(row); err != nil {
			return copied, fmt.Errorf("writing row %d: %w", copied+1, err)
		}
		copied++
	}

	cw.Flush()
	return copied, cw.Error()
}

// SaveCSV writes ds to the file at path, replacing it.
func SaveCSV(path string, ds types.CleanedDataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, ds); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// WriteCSV writes a cleaned dataset in ds.Columns order. Derived columns
// are rendered from the record's derived fields; publish_time is written
// as the parsed date, or empty when it did not parse.
func WriteCSV(w io.Writer, ds types.CleanedDataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(ds.Columns))
	for i, rec := range ds.Records {
		for j, col := range ds.Columns {
			row[j] = CellValue(rec, col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CellValue renders the value of column col for rec as snapshot text.
func CellValue(rec types.CleanedRecord, col string) string {
	switch col {
	case string(types.ColPublishTime):
		if rec.HasDate() {
			return rec.PublishTime.Format(dateLayout)
		}
		return ""
	case types.ColYear:
		if rec.Year != 0 {
			return strconv.Itoa(rec.Year)
		}
		return ""
	case types.ColMonth:
		if rec.HasMonth() {
			return rec.Month.Format(dateLayout)
		}
		return ""
	case types.ColTitleWordCount:
		return strconv.Itoa(rec.TitleWordCount)
	case types.ColAbstractWordCount:
		return strconv.Itoa(rec.AbstractWordCount)
	case types.ColIsPreprint:
		return strconv.FormatBool(rec.IsPreprint)
	default:
		return rec.Fields[col]
	}
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}
