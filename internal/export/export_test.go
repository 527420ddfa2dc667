package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/google/uuid"
)

func testRecords() []core.Record {
	return []core.Record{
		{
			ID:      uuid.MustParse("11111111-1111-4111-8111-111111111111"),
			Name:    "Jane Doe",
			Address: "12 Main St, Springfield, United States",
			Phone:   "+1 (555) 010-0000",
			Region:  core.RegionUSA,
		},
		{
			ID:      uuid.MustParse("22222222-2222-4222-8222-222222222222"),
			Name:    `Anna "Ania" Nowak`,
			Address: "ul. Długa 5, Gdańsk, Poland",
			Phone:   "+48 512 000 000",
			Region:  core.RegionPoland,
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatCSV, "CSV": FormatCSV, "legacy": FormatLegacy, "json": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	_, err := ParseFormat("xlsx")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseFormat(xlsx) error = %v, want ErrUnknownFormat", err)
	}
	if got := core.MapError(err).Code; got != "EXP001" {
		t.Errorf("MapError code = %q, want EXP001", got)
	}
}

func TestWriteCSV_RoundTripsEmbeddedDelimiters(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testRecords()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if strings.Join(rows[0], ",") != "ID,Name,Address,Phone" {
		t.Errorf("header = %v", rows[0])
	}
	for i, rec := range testRecords() {
		want := rec.Row()
		for j := range want {
			if rows[i+1][j] != want[j] {
				t.Errorf("row %d col %d = %q, want %q", i+1, j, rows[i+1][j], want[j])
			}
		}
	}
}

func TestWriteLegacy_MatchesOriginalLayout(t *testing.T) {
	var buf bytes.Buffer
	recs := testRecords()[:1]
	if err := WriteLegacy(&buf, recs); err != nil {
		t.Fatalf("WriteLegacy() error = %v", err)
	}

	want := "ID,Name,Address,Phone\n" +
		"11111111-1111-4111-8111-111111111111,Jane Doe,12 Main St, Springfield, United States,+1 (555) 010-0000"
	if got := buf.String(); got != want {
		t.Errorf("WriteLegacy() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteLegacy_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLegacy(&buf, nil); err != nil {
		t.Fatalf("WriteLegacy() error = %v", err)
	}
	if got := buf.String(); got != "ID,Name,Address,Phone" {
		t.Errorf("WriteLegacy(nil) = %q", got)
	}
}

func TestWriteJSON_OmitsRegion(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, testRecords()); err != nil {
		t.Fatalf("Write(json) error = %v", err)
	}

	var rows []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if _, ok := rows[0]["region"]; ok {
		t.Error("region should not be exported")
	}
	if rows[1]["name"] != `Anna "Ania" Nowak` {
		t.Errorf("name = %q", rows[1]["name"])
	}
}

func TestFormat_FileNameAndContentType(t *testing.T) {
	if got := FormatCSV.FileName(DefaultFileName); got != "user_data.csv" {
		t.Errorf("FileName = %q", got)
	}
	if got := FormatLegacy.FileName(DefaultFileName); got != "user_data.csv" {
		t.Errorf("legacy FileName = %q", got)
	}
	if got := FormatJSON.FileName("x"); got != "x.json" {
		t.Errorf("json FileName = %q", got)
	}
	if FormatJSON.ContentType() != "application/json" {
		t.Errorf("json ContentType = %q", FormatJSON.ContentType())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Format("xml"), nil); err == nil {
		t.Error("Write(xml) succeeded")
	}
}
