package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/PauloHFS/goth-paginator/internal/config"
	"github.com/PauloHFS/goth-paginator/internal/i18n"
	"github.com/PauloHFS/goth-paginator/internal/logging"
	"github.com/PauloHFS/goth-paginator/internal/metrics"
	"github.com/PauloHFS/goth-paginator/internal/pagination"
	"github.com/PauloHFS/goth-paginator/internal/routes"
	"github.com/PauloHFS/goth-paginator/internal/telemetry"
	"github.com/PauloHFS/goth-paginator/internal/validator"
	"github.com/PauloHFS/goth-paginator/internal/view"
)

type HandlerDeps struct {
	Config   *config.Config
	Renderer *view.Renderer
}

// AppHandler é um tipo customizado que permite retornar erros dos handlers
type AppHandler func(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error

// Handle envolve nosso AppHandler para conformidade com http.HandlerFunc
func Handle(deps HandlerDeps, h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(deps, w, r); err != nil {
			logging.Get().Error("request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)

			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}

func RegisterRoutes(mux *http.ServeMux, deps HandlerDeps) {
	mux.HandleFunc("GET "+routes.Pagination, Handle(deps, handlePagination))
	mux.HandleFunc("GET "+routes.PaginationJSON, Handle(deps, handlePaginationJSON))
	mux.HandleFunc("GET "+routes.Health, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// CatalogLabels resolves the renderer labels from the catalog for the
// request locale.
func CatalogLabels(c *i18n.Catalog) view.LabelProvider {
	return view.LabelFunc(func(ctx context.Context) view.Labels {
		t := c.Get(ctx)
		return view.Labels{Previous: t.Previous, Next: t.Next, Page: t.Page, Summary: t.Showing}
	})
}

type paginationQuery struct {
	Total   int    `query:"total" validate:"gte=0"`
	PerPage int    `query:"per_page" validate:"gte=0"`
	Page    int    `query:"page"`
	Max     int    `query:"max" validate:"gte=3,lte=100"` // config.MaxPagesLimit
	Style   string `query:"style" validate:"oneof=bootstrap tailwind"`
	Pattern string `query:"pattern"`
}

type badRequest struct {
	result validator.ValidationResult
}

func (e *badRequest) Error() string {
	return fmt.Sprintf("invalid query: %+v", e.result.Errors)
}

func parseQuery(cfg *config.Config, q url.Values) (paginationQuery, error) {
	pq := paginationQuery{
		PerPage: cfg.PerPage,
		Page:    1,
		Max:     cfg.MaxPagesToShow,
		Style:   cfg.Style,
		Pattern: cfg.URLPattern,
	}

	var fieldErrs []validator.ValidationError
	intParam := func(name string, dst *int) {
		v := q.Get(name)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fieldErrs = append(fieldErrs, validator.ValidationError{Field: name, Message: "must be an integer"})
			return
		}
		*dst = n
	}

	intParam("total", &pq.Total)
	intParam("per_page", &pq.PerPage)
	intParam("page", &pq.Page)
	intParam("max", &pq.Max)
	if v := q.Get("style"); v != "" {
		pq.Style = v
	}
	if q.Has("pattern") {
		pq.Pattern = q.Get("pattern")
	}

	if len(fieldErrs) > 0 {
		return pq, &badRequest{result: validator.ValidationResult{Errors: fieldErrs}}
	}
	if result := validator.Check(pq); !result.Valid {
		return pq, &badRequest{result: result}
	}
	return pq, nil
}

// paginatorFromRequest builds the paginator, writing a 400 itself when the
// query is rejected. ok is false in that case.
func paginatorFromRequest(deps HandlerDeps, w http.ResponseWriter, r *http.Request, format string) (pagination.Paginator, view.Style, bool) {
	pq, err := parseQuery(deps.Config, r.URL.Query())
	if err != nil {
		writeBadRequest(w, err)
		return pagination.Paginator{}, "", false
	}

	style, err := view.ParseStyle(pq.Style)
	if err != nil {
		writeBadRequest(w, err)
		return pagination.Paginator{}, "", false
	}

	p, err := pagination.New(pagination.Options{
		TotalItems:     pq.Total,
		ItemsPerPage:   pq.PerPage,
		CurrentPage:    pq.Page,
		MaxPagesToShow: pq.Max,
		URLPattern:     pq.Pattern,
	})
	if err != nil {
		writeBadRequest(w, err)
		return pagination.Paginator{}, "", false
	}

	metrics.NumPages.Observe(float64(p.NumPages()))
	metrics.RendersTotal.WithLabelValues(string(style), format).Inc()
	logging.AddToEvent(r.Context(),
		slog.Int("num_pages", p.NumPages()),
		slog.Int("page", p.CurrentPage()),
		slog.String("style", string(style)),
	)
	return p, style, true
}

func writeBadRequest(w http.ResponseWriter, err error) {
	var br *badRequest
	var body validator.ValidationResult
	switch {
	case errors.As(err, &br):
		metrics.InvalidRequests.WithLabelValues("query").Inc()
		body = br.result
	case errors.Is(err, pagination.ErrInvalidConfiguration):
		metrics.InvalidRequests.WithLabelValues("configuration").Inc()
		body = validator.ValidationResult{Errors: []validator.ValidationError{{Message: err.Error()}}}
	default:
		metrics.InvalidRequests.WithLabelValues("other").Inc()
		body = validator.ValidationResult{Errors: []validator.ValidationError{{Message: err.Error()}}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(body)
}

func startSpan(r *http.Request, name string, p pagination.Paginator) (*http.Request, trace.Span) {
	ctx, span := telemetry.Tracer().Start(r.Context(), name, trace.WithAttributes(
		attribute.Int("pagination.total_items", p.TotalItems()),
		attribute.Int("pagination.items_per_page", p.ItemsPerPage()),
		attribute.Int("pagination.current_page", p.CurrentPage()),
		attribute.Int("pagination.num_pages", p.NumPages()),
	))
	return r.WithContext(ctx), span
}

func handlePagination(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	p, style, ok := paginatorFromRequest(deps, w, r, "html")
	if !ok {
		return nil
	}

	r, span := startSpan(r, "pagination.render", p)
	defer span.End()
	span.SetAttributes(attribute.String("pagination.style", string(style)))

	templ.Handler(deps.Renderer.Component(p, style)).ServeHTTP(w, r)
	return nil
}

type paginationResponse struct {
	NumPages    int               `json:"num_pages"`
	CurrentPage int               `json:"current_page"`
	Pages       []pagination.Page `json:"pages"`
	Previous    *int              `json:"previous,omitempty"`
	PreviousURL string            `json:"previous_url,omitempty"`
	Next        *int              `json:"next,omitempty"`
	NextURL     string            `json:"next_url,omitempty"`
	FirstItem   *int              `json:"first_item,omitempty"`
	LastItem    *int              `json:"last_item,omitempty"`
}

func optional(n int, ok bool) *int {
	if !ok {
		return nil
	}
	return &n
}

func handlePaginationJSON(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	p, _, ok := paginatorFromRequest(deps, w, r, "json")
	if !ok {
		return nil
	}

	_, span := startSpan(r, "pagination.describe", p)
	defer span.End()

	pages := p.Pages()
	if pages == nil {
		pages = []pagination.Page{}
	}

	resp := paginationResponse{
		NumPages:    p.NumPages(),
		CurrentPage: p.CurrentPage(),
		Pages:       pages,
		Previous:    optional(p.PreviousPage()),
		PreviousURL: p.PreviousURL(),
		Next:        optional(p.NextPage()),
		NextURL:     p.NextURL(),
		FirstItem:   optional(p.FirstItemIndex()),
		LastItem:    optional(p.LastItemIndex()),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("failed to encode pagination: %w", err)
	}
	return nil
}
