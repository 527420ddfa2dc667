package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/fakerecords/internal/core"
)

// parseRequest reads seed, region, errors and count from the query string or
// form body. Missing values take the configured defaults; region falls back
// to defaultRegion.
func (s *Server) parseRequest(r *http.Request, defaultRegion core.RegionFilter) (core.Request, error) {
	req := core.Request{
		Seed:   s.cfg.Generator.DefaultSeed,
		Region: defaultRegion,
		Count:  s.cfg.Generator.DefaultCount,
	}

	if v := formValue(r, "seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return core.Request{}, fmt.Errorf("%w: invalid seed %q", core.ErrInvalidArgument, v)
		}
		req.Seed = seed
	}

	if v := formValue(r, "region"); v != "" {
		filter, err := core.ParseRegionFilter(v)
		if err != nil {
			return core.Request{}, err
		}
		req.Region = filter
	}

	if v := formValue(r, "errors"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return core.Request{}, fmt.Errorf("%w: error rate %q is not a whole number", core.ErrInvalidArgument, v)
		}
		req.ErrorRate = rate
	}

	if v := formValue(r, "count"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return core.Request{}, fmt.Errorf("%w: count %q is not a whole number", core.ErrInvalidArgument, v)
		}
		req.Count = count
	}

	return req, nil
}

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}
