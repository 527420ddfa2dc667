// Package export serializes record views for download.
//
// Three formats are supported:
//
//   - csv: RFC 4180 output via encoding/csv; embedded commas and quotes are escaped.
//   - legacy: fields joined with bare commas and rows with "\n", byte-compatible
//     with the original download. Embedded delimiters are NOT escaped.
//   - json: an array of {id, name, address, phone} objects.
//
// All formats emit the columns ID, Name, Address, Phone in that order.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/fakerecords/internal/core"
)

// Format selects an output encoding.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatLegacy Format = "legacy"
	FormatJSON   Format = "json"
)

// ErrUnknownFormat is returned for format names other than csv, legacy and json.
var ErrUnknownFormat = errors.New("unknown export format")

// DefaultFileName is the download name used by the UI.
const DefaultFileName = "user_data"

// ParseFormat resolves a format name. Empty input yields FormatCSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatLegacy:
		return FormatLegacy, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv;charset=utf-8"
}

// FileName returns base with the format's extension.
func (f Format) FileName(base string) string {
	if f == FormatJSON {
		return base + ".json"
	}
	return base + ".csv"
}

// Write encodes records to w in format f.
func Write(w io.Writer, f Format, records []core.Record) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatLegacy:
		return WriteLegacy(w, records)
	case FormatJSON:
		return WriteJSON(w, records)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// WriteCSV writes a header row and one quoted row per record.
func WriteCSV(w io.Writer, records []core.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(core.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// Flush periodically so large exports stream instead of buffering
	const flushInterval = 1000
	for i, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
		if (i+1)%flushInterval == 0 {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteLegacy writes rows joined with bare commas and separated by "\n",
// with no trailing newline.
func WriteLegacy(w io.Writer, records []core.Record) error {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(core.Columns, ","))
	for _, rec := range records {
		lines = append(lines, strings.Join(rec.Row(), ","))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// jsonRow omits the region, which is internal to filtering.
type jsonRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// WriteJSON writes records as a JSON array.
func WriteJSON(w io.Writer, records []core.Record) error {
	rows := make([]jsonRow, len(records))
	for i, rec := range records {
		rows[i] = jsonRow{ID: rec.ID.String(), Name: rec.Name, Address: rec.Address, Phone: rec.Phone}
	}
	return json.NewEncoder(w).Encode(rows)
}
