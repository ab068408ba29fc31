package api

import (
	"net/http"
	"strconv"

	"github.com/matzehuels/venngen/pkg/core/render/sink"
	"github.com/matzehuels/venngen/pkg/errors"
	"github.com/matzehuels/venngen/pkg/pipeline"
)

const svgContentType = "image/svg+xml"

// Query parameter names, shared with the form page.
const (
	paramFirst    = "first"
	paramSecond   = "second"
	paramThird    = "third"
	paramOneTwo   = "one_two"
	paramOneThree = "one_three"
	paramTwoThree = "two_three"
	paramMiddle   = "middle"
	paramRadius   = "radius"
	paramSize     = "size"
	paramOverlap  = "overlap"
)

func (s *Server) handleDiagram(allowThird bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parseQuery(r, allowThird)
		if err != nil {
			writeError(w, r, statusFor(err), errors.UserMessage(err))
			return
		}
		s.cfg.Apply(&opts)
		opts.Formats = []string{pipeline.FormatSVG}

		res, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.logger.Error("render failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
			writeError(w, r, statusFor(err), errors.UserMessage(err))
			return
		}

		w.Header().Set("Content-Type", svgContentType)
		w.Header().Set("Content-Disposition", `inline; filename="venn.svg"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(res.Artifacts[pipeline.FormatSVG])
	}
}

// parseQuery maps query parameters to pipeline options. Without allowThird
// the three-circle parameters are ignored.
func parseQuery(r *http.Request, allowThird bool) (pipeline.Options, error) {
	q := r.URL.Query()

	opts := pipeline.Options{
		First:       q.Get(paramFirst),
		Second:      q.Get(paramSecond),
		FirstSecond: q.Get(paramOneTwo),
	}
	if opts.First == "" || opts.Second == "" {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "query parameters %q and %q are required", paramFirst, paramSecond)
	}
	if allowThird {
		opts.Third = q.Get(paramThird)
		opts.FirstThird = q.Get(paramOneThree)
		opts.SecondThird = q.Get(paramTwoThree)
		opts.Central = q.Get(paramMiddle)
	}

	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{paramRadius, &opts.Radius},
		{paramSize, &opts.Size},
	} {
		v, ok, err := parseNumber(q.Get(p.name), p.name)
		if err != nil {
			return pipeline.Options{}, err
		}
		if ok {
			*p.dst = v
		}
	}

	overlap, ok, err := parseNumber(q.Get(paramOverlap), paramOverlap)
	if err != nil {
		return pipeline.Options{}, err
	}
	if ok {
		opts.Overlap = pipeline.Float(overlap)
	}
	return opts, nil
}

// parseNumber parses an optional numeric parameter. An empty value reports
// ok=false so the caller keeps its default.
func parseNumber(raw, name string) (float64, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeInvalidDimension, err, "%s must be a number, got %q", name, raw)
	}
	if err := errors.ValidateNumber(name, v, false); err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidTitle, errors.ErrCodeInvalidDimension:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with an SVG placeholder describing msg.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(sink.ErrorSVG(msg))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
