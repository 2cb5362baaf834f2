// Package server exposes the signal catalog and the DFT over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/joeyjackson/fourier-series-drawer/internal/catalog"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	applog "github.com/joeyjackson/fourier-series-drawer/internal/log"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// maxBodyBytes caps request bodies before they are parsed.
const maxBodyBytes = 8 << 20

type Options struct {
	// MaxSamples bounds the length of /api/dft sample lists.
	MaxSamples int
}

type Server struct {
	catalog *catalog.Catalog
	schemas schemas
	log     *slog.Logger
	mux     *http.ServeMux
}

// New builds the HTTP routes over c.
func New(c *catalog.Catalog, opts Options) (*Server, error) {
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = 4096
	}
	sc, err := compileSchemas(opts.MaxSamples)
	if err != nil {
		return nil, err
	}
	s := &Server{
		catalog: c,
		schemas: sc,
		log:     applog.WithComponent("server"),
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.HandleFunc("GET /api/signals", s.handleList)
	s.mux.HandleFunc("POST /api/signal", s.handleSignal)
	s.mux.HandleFunc("POST /api/dft", s.handleDFT)
	return s, nil
}

// Handler returns the routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type windowRequest struct {
	MinX           int  `json:"minX"`
	MinY           int  `json:"minY"`
	Width          int  `json:"width"`
	Height         int  `json:"height"`
	CenterInWindow bool `json:"centerInWindow"`
}

type signalRequest struct {
	Object     string `json:"object"`
	IncludeDFT bool   `json:"includeDFT"`
	Transform  *struct {
		Window *windowRequest `json:"window"`
	} `json:"transform"`
}

type signalResponse struct {
	Name string            `json:"name"`
	Path []fourier.Point   `json:"path"`
	Bins []fourier.Complex `json:"bins,omitempty"`
}

func (s *Server) handleSignal(w http.ResponseWriter, r *http.Request) {
	var req signalRequest
	if !s.decode(w, r, s.schemas.signal, &req) {
		return
	}

	sig, err := s.catalog.Get(req.Object)
	if errors.Is(err, catalog.ErrUnknownSignal) {
		writeErrors(w, http.StatusBadRequest, FieldError{Field: "object", Msg: "Invalid object name"})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	path := sig.Path
	if req.Transform != nil && req.Transform.Window != nil {
		win := req.Transform.Window
		path, err = pathfit.Fit(path, pathfit.Window{
			MinX:           float64(win.MinX),
			MinY:           float64(win.MinY),
			Width:          float64(win.Width),
			Height:         float64(win.Height),
			CenterInWindow: win.CenterInWindow,
		})
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
	}

	if err := checkFinitePath(path); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	resp := signalResponse{Name: sig.Name, Path: path}
	if req.IncludeDFT {
		resp.Bins, err = fourier.DFTPoints(path)
		if err == nil {
			err = checkFinite(resp.Bins)
		}
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type dftRequest struct {
	Samples []fourier.Point `json:"samples"`
}

type dftResponse struct {
	DFT []fourier.Complex `json:"dft"`
}

func (s *Server) handleDFT(w http.ResponseWriter, r *http.Request) {
	var req dftRequest
	if !s.decode(w, r, s.schemas.dft, &req) {
		return
	}
	bins, err := fourier.DFTPoints(req.Samples)
	if err == nil {
		err = checkFinite(bins)
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, dftResponse{DFT: bins})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"signals": s.catalog.Names()})
}

// decode reads the body, validates it against schema and unmarshals it into
// v. On failure it has already written the response.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, schema *gojsonschema.Schema, v any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeErrors(w, http.StatusRequestEntityTooLarge, FieldError{Msg: err.Error()})
		return false
	}
	if !json.Valid(body) {
		writeErrors(w, http.StatusBadRequest, FieldError{Msg: "request body is not valid JSON"})
		return false
	}
	fieldErrs, err := validate(schema, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	if len(fieldErrs) > 0 {
		writeErrors(w, http.StatusBadRequest, fieldErrs...)
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeErrors(w, http.StatusBadRequest, FieldError{Msg: err.Error()})
		return false
	}
	return true
}

// writeJSON encodes v before committing the status, so an unencodable value
// becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		applog.L().Error("encode response", slog.Any("err", err))
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]any{"errors": []FieldError{{Msg: "response could not be encoded"}}})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// errNonFinite reports a result that overflowed float64.
var errNonFinite = errors.New("result is not finite")

func checkFinite(bins []fourier.Complex) error {
	for k, b := range bins {
		if !b.Point().IsFinite() {
			return fmt.Errorf("%w: bin %d is %v", errNonFinite, k, b)
		}
	}
	return nil
}

func checkFinitePath(path []fourier.Point) error {
	for i, p := range path {
		if !p.IsFinite() {
			return fmt.Errorf("%w: point %d is %v", errNonFinite, i, p)
		}
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeErrors(w, status, FieldError{Msg: err.Error()})
}

func writeErrors(w http.ResponseWriter, status int, errs ...FieldError) {
	writeJSON(w, status, map[string]any{"errors": errs})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("took", time.Since(start)),
		)
	})
}
