package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/JonMunkholm/fakerecords/internal/database"
	"github.com/JonMunkholm/fakerecords/internal/export"
	"github.com/JonMunkholm/fakerecords/internal/logging"
	"github.com/JonMunkholm/fakerecords/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// The page opens on the USA data set; API callers get every region.
var (
	pageRegion = core.OnlyRegion(core.RegionUSA)
	apiRegion  = core.AllRegions()
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex renders the generator page.
// Bad parameters are shown inline rather than replacing the page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := templates.PageData{
		Seed:      s.cfg.Generator.DefaultSeed,
		Count:     s.cfg.Generator.DefaultCount,
		Region:    pageRegion,
		DBEnabled: s.sink != nil,
	}
	status := http.StatusOK

	req, err := s.parseRequest(r, pageRegion)
	if err == nil {
		data.Seed, data.ErrorRate, data.Count, data.Region = req.Seed, req.ErrorRate, req.Count, req.Region
		var view *core.View
		view, err = s.service.View(r.Context(), req)
		if err == nil {
			data.Records = view.Records
		}
	}
	if err != nil {
		status = statusFor(err)
		msg := core.MapError(err)
		data.Error = &msg
		logging.FromContext(r.Context()).Warn("page view failed", "error", err, "code", msg.Code)
	}

	if n := r.URL.Query().Get("saved"); n != "" {
		data.Notice = fmt.Sprintf("Saved %s records to the database.", n)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Page(data).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "error", err)
	}
}

// handleRecordsPartial renders only the records table for partial page updates.
func (s *Server) handleRecordsPartial(w http.ResponseWriter, r *http.Request) {
	view, err := s.view(r, pageRegion)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RecordsTable(view.Records).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render records", "error", err)
	}
}

// regionInfo is one entry of the region listing.
type regionInfo struct {
	Name  core.Region `json:"name"`
	Label string      `json:"label"`
}

// handleListRegions returns the supported regions.
func (s *Server) handleListRegions(w http.ResponseWriter, r *http.Request) {
	regions := core.Regions()
	out := make([]regionInfo, len(regions))
	for i, region := range regions {
		out[i] = regionInfo{Name: region, Label: region.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}

// RecordsResponse is the JSON form of a view.
type RecordsResponse struct {
	Seed      int64  `json:"seed"`
	Region    string `json:"region"`
	ErrorRate int    `json:"error_rate"`
	Count     int    `json:"count"`
	*core.View
}

func newRecordsResponse(view *core.View) RecordsResponse {
	return RecordsResponse{
		Seed:      view.Request.Seed,
		Region:    view.Request.Region.String(),
		ErrorRate: view.Request.ErrorRate,
		Count:     view.Request.Count,
		View:      view,
	}
}

// handleGetRecords returns a view as JSON.
func (s *Server) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	view, err := s.view(r, apiRegion)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, newRecordsResponse(view))
}

// StatusResponse reports generator load and sink availability.
type StatusResponse struct {
	Generations core.LimiterStatus `json:"generations"`
	Policy      core.RegionPolicy  `json:"policy"`
	MaxCount    int                `json:"max_count"`
	Database    bool               `json:"database"`
}

// handleStatus returns the current state of the generation limiter.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Generations: s.service.LimiterStatus(),
		Policy:      s.service.Generator().Policy(),
		MaxCount:    s.service.Generator().MaxCount(),
		Database:    s.sink != nil,
	})
}

// handleExport streams a view as a file download. The extension picks the
// encoding; ?format=legacy selects the unescaped CSV join.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "format")
	if q := r.URL.Query().Get("format"); q != "" {
		name = q
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	view, err := s.view(r, apiRegion)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.FileName(export.DefaultFileName)))

	if err := export.Write(w, format, view.Records); err != nil {
		// Headers are already sent; the client sees a truncated file.
		logging.FromContext(r.Context()).Error("export write failed", "format", format, "error", err)
		return
	}

	logging.WithFields(r.Context(),
		"seed", view.Request.Seed,
		"region", view.Request.Region.String(),
		"error_rate", view.Request.ErrorRate,
	).Info("export downloaded", "format", format, "rows", len(view.Records))
}

// handleRegenerate drops the cached baselines for the seed and returns a fresh view.
func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r, apiRegion)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	view, err := s.service.Regenerate(r.Context(), req)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, newRecordsResponse(view))
}

// ExportResult is returned after a database export.
type ExportResult struct {
	Table string `json:"table,omitempty"`
	Rows  int64  `json:"rows"`
}

// handleExportPostgres loads a view into the configured database.
func (s *Server) handleExportPostgres(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r, apiRegion)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	n, err := s.exportToSink(r, req)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	result := ExportResult{Rows: n}
	if t, ok := s.sink.(interface{ Table() string }); ok {
		result.Table = t.Table()
	}
	writeJSON(w, http.StatusOK, result)
}

// handleRegenerateForm is the browser form variant of handleRegenerate.
func (s *Server) handleRegenerateForm(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r, pageRegion)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	if _, err := s.service.Regenerate(r.Context(), req); err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	http.Redirect(w, r, "/?"+queryFor(req), http.StatusSeeOther)
}

// handleExportPostgresForm is the browser form variant of handleExportPostgres.
func (s *Server) handleExportPostgresForm(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r, pageRegion)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	n, err := s.exportToSink(r, req)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	http.Redirect(w, r, "/?"+queryFor(req)+"&saved="+strconv.FormatInt(n, 10), http.StatusSeeOther)
}

// view parses the request and builds its view.
func (s *Server) view(r *http.Request, defaultRegion core.RegionFilter) (*core.View, error) {
	req, err := s.parseRequest(r, defaultRegion)
	if err != nil {
		return nil, err
	}
	return s.service.View(r.Context(), req)
}

// exportToSink builds the view for req and writes it to the database sink.
func (s *Server) exportToSink(r *http.Request, req core.Request) (int64, error) {
	if s.sink == nil {
		return 0, database.ErrNotConfigured
	}

	view, err := s.service.View(r.Context(), req)
	if err != nil {
		return 0, err
	}

	client := clientInfo(r)
	ctx := core.WithClientInfo(r.Context(), client)
	if timeout := s.cfg.Database.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	n, err := s.sink.Insert(ctx, database.Batch{
		Seed:        req.Seed,
		Region:      req.Region,
		ErrorRate:   req.ErrorRate,
		Records:     view.Records,
		RequestedBy: client.IP,
	})
	if err != nil {
		return 0, err
	}

	logging.WithFields(ctx,
		"seed", req.Seed,
		"region", req.Region.String(),
		"error_rate", req.ErrorRate,
	).Info("view saved to database",
		"rows", n,
		"ip", client.IP,
		"user_agent", client.UserAgent,
	)
	return n, nil
}

func queryFor(req core.Request) string {
	return templates.PageData{
		Seed:      req.Seed,
		ErrorRate: req.ErrorRate,
		Count:     req.Count,
		Region:    req.Region,
	}.Query()
}
