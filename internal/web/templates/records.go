package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/a-h/templ"
)

// RecordsTable renders the records of a view with a 1-based row number.
func RecordsTable(records []core.Record) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<table id="records" class="records"><thead><tr><th>#</th>`)
		for _, col := range core.Columns {
			h.rawf(`<th>%s</th>`, esc(col))
		}
		h.raw(`</tr></thead><tbody>`)
		if len(records) == 0 {
			h.rawf(`<tr><td colspan="%d" class="empty">No records for this selection.</td></tr>`, len(core.Columns)+1)
		}
		for i, rec := range records {
			h.rawf(`<tr data-id="%s"><td>%s</td>`, esc(rec.ID.String()), strconv.Itoa(i+1))
			for _, cell := range rec.Row() {
				h.raw(`<td>`)
				h.text(cell)
				h.raw(`</td>`)
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}
