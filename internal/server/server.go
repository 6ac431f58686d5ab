// Package server exposes the read-only aggregation API over HTTP. It is
// a thin transport layer: handlers parse query parameters, call the
// primary port services, and encode JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/example/nusuk/internal/app"
	"github.com/example/nusuk/internal/core/funnel"
	"github.com/example/nusuk/internal/ports/primary"
	"github.com/example/nusuk/internal/season"
)

// Server serves the aggregation API.
type Server struct {
	metricsService primary.MetricsService
	personService  primary.PersonService
	logger         *zap.Logger
	metrics        *Metrics
	router         chi.Router
}

// New creates a Server with its routes registered.
func New(metricsService primary.MetricsService, personService primary.PersonService, logger *zap.Logger, m *Metrics) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		metricsService: metricsService,
		personService:  personService,
		logger:         logger,
		metrics:        m,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/metrics", s.handleMetrics)
		r.Get("/providers", s.handleProviders)
		r.Get("/phases", s.handlePhases)
		r.Get("/dataset", s.handleDataset)
		r.Get("/persons/{id}", s.handlePerson)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler for mounting or testing.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)))
		if s.metrics != nil {
			s.metrics.RequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).Inc()
			s.metrics.RequestDuration.Observe(time.Since(start).Seconds())
		}
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, app.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrNoDataset):
		status = http.StatusConflict
	case errors.As(err, new(*badRequestError)):
		status = http.StatusBadRequest
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// badRequestError marks parse failures so writeError can map them to 400.
type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

// parseAsOf resolves the as_of and phase query parameters; no parameter
// means end of season.
func parseAsOf(r *http.Request) (time.Time, error) {
	if phase := r.URL.Query().Get("phase"); phase != "" {
		t, ok := season.PhaseDate(phase)
		if !ok {
			return time.Time{}, badRequest("unknown phase %q", phase)
		}
		return t, nil
	}
	if asOf := r.URL.Query().Get("as_of"); asOf != "" {
		t, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return time.Time{}, badRequest("invalid as_of %q, want YYYY-MM-DD", asOf)
		}
		return t, nil
	}
	return season.End, nil
}

func parseList(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	req := primary.MetricsRequest{
		AsOf: asOf,
		Filters: funnel.Filters{
			PersonTypes:   parseList(r, "type"),
			Nationalities: parseList(r, "nationality"),
			Providers:     parseList(r, "provider"),
			Channels:      parseList(r, "channel"),
		},
		ByType: r.URL.Query().Get("by_type") == "true",
	}

	resp, err := s.metricsService.GetMetrics(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.SnapshotEvaluation.Inc()
	}

	body := metricsResponse{
		AsOf:   resp.AsOf.Format("2006-01-02"),
		Funnel: toFunnelDTO(resp.Result),
	}
	if resp.ByType != nil {
		body.ByType = make(map[string]funnelDTO, len(resp.ByType))
		for personType, result := range resp.ByType {
			body.ByType[personType] = toFunnelDTO(result)
		}
	}
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	stats, err := s.metricsService.GetProviderMetrics(r.Context(), asOf)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]providerDTO, len(stats))
	for i, st := range stats {
		out[i] = providerDTO{
			Provider:         st.Provider,
			PilgrimsAssigned: st.PilgrimsAssigned,
			CardsAtProvider:  st.CardsAtProvider,
			CardsReceived:    st.CardsReceived,
			CardsActivated:   st.CardsActivated,
			DeliveryRate:     st.DeliveryRate,
			AvgDeliveryDays:  st.AvgDeliveryDays,
			HealthIncidents:  st.HealthIncidents,
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"as_of":     asOf.Format("2006-01-02"),
		"providers": out,
	})
}

func (s *Server) handlePhases(w http.ResponseWriter, r *http.Request) {
	out := make([]map[string]string, len(season.Phases))
	for i, p := range season.Phases {
		out[i] = map[string]string{
			"name": p.Name,
			"date": p.Date.Format("2006-01-02"),
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"phases": out})
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	info, err := s.metricsService.DatasetInfo(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"run_id":         info.RunID,
		"seed":           info.Seed,
		"generated_at":   info.GeneratedAt.Format(time.RFC3339),
		"total_records":  info.TotalRecords,
		"counts_by_type": info.CountsByType,
	})
}

func (s *Server) handlePerson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, badRequest("invalid person ID"))
		return
	}

	p, err := s.personService.GetPerson(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPersonDTO(p))
}
