package templates

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/a-h/templ"
)

// PageData drives the index page.
type PageData struct {
	Seed      int64
	ErrorRate int
	Count     int
	Region    core.RegionFilter
	Records   []core.Record
	DBEnabled bool
	Notice    string            // confirmation shown above the table
	Error     *core.UserMessage // rendered above the table when set
}

// Query returns the URL query that reproduces this page's view.
func (p PageData) Query() string {
	v := url.Values{}
	v.Set("seed", strconv.FormatInt(p.Seed, 10))
	v.Set("region", p.Region.String())
	v.Set("errors", strconv.Itoa(p.ErrorRate))
	v.Set("count", strconv.Itoa(p.Count))
	return v.Encode()
}

const pageStyle = `body{font-family:sans-serif;margin:0}
.container{max-width:72rem;margin:0 auto;padding:1rem}
label{display:block;color:#374151;margin-bottom:.25rem}
.field{margin-bottom:1rem}
input[type=number],select{border:1px solid #d1d5db;border-radius:.25rem;padding:.5rem;width:100%}
input[type=range]{width:100%}
.button{display:inline-block;background:#3b82f6;color:#fff;padding:.5rem;border-radius:.25rem;text-decoration:none;margin:0 .5rem 1rem 0;border:0;cursor:pointer}
table.records{min-width:100%;border-collapse:collapse}
table.records th,table.records td{border:1px solid #e5e7eb;padding:.5rem 1rem;text-align:center}
.alert-error{border:1px solid #fca5a5;background:#fef2f2;padding:.5rem 1rem;margin-bottom:1rem}
.alert-code{font-size:.8em;color:#6b7280}
.notice{border:1px solid #86efac;background:#f0fdf4;padding:.5rem 1rem;margin-bottom:1rem}`

// Page renders the full generator page: controls, download links and table.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>Random User Generator</title><style>` + pageStyle + `</style></head><body>`)
		h.raw(`<div class="container"><h1>Random User Generator</h1>`)

		h.raw(`<form method="get" action="/" id="controls">`)
		h.rawf(`<input type="hidden" name="count" value="%d">`, data.Count)

		h.raw(`<div class="field"><label for="seed">Seed value:</label>`)
		h.rawf(`<input type="number" id="seed" name="seed" value="%d" onchange="this.form.submit()">`, data.Seed)
		h.raw(`</div>`)

		h.raw(`<div class="field"><label for="errors">Number of errors (0-10):</label>`)
		h.rawf(`<input type="range" id="errors" name="errors" min="0" max="%d" value="%d" onchange="this.form.submit()">`,
			core.MaxErrorRate, data.ErrorRate)
		h.rawf(`<span>%d</span></div>`, data.ErrorRate)

		query := esc(data.Query())
		h.rawf(`<a class="button" href="/api/export.csv?%s" download>Download data as CSV</a>`, query)
		h.rawf(`<a class="button" href="/api/records?%s">View as JSON</a>`, query)
		h.raw(`<button class="button" type="submit" formmethod="post" formaction="/regenerate">Regenerate</button>`)
		if data.DBEnabled {
			h.raw(`<button class="button" type="submit" formmethod="post" formaction="/export/postgres">Save to database</button>`)
		}

		h.raw(`<div class="field"><label for="region">Region:</label>`)
		h.raw(`<select id="region" name="region" onchange="this.form.submit()">`)
		writeOption(h, core.RegionAll, "All regions", data.Region.IsAll())
		for _, r := range core.Regions() {
			writeOption(h, string(r), r.Label(), data.Region.Region() == r)
		}
		h.raw(`</select></div></form>`)

		if data.Notice != "" {
			h.raw(`<p class="notice" role="status">`)
			h.text(data.Notice)
			h.raw(`</p>`)
		}
		if h.err != nil {
			return h.err
		}
		if data.Error != nil {
			if err := ErrorAlert(data.Error.Message, data.Error.Action, data.Error.Code).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := RecordsTable(data.Records).Render(ctx, w); err != nil {
			return err
		}

		h.raw(`</div></body></html>`)
		return h.err
	})
}

func writeOption(h *htmlWriter, value, label string, selected bool) {
	sel := ""
	if selected {
		sel = " selected"
	}
	h.rawf(`<option value="%s"%s>%s</option>`, esc(value), sel, esc(label))
}
