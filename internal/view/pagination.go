package view

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/PauloHFS/goth-paginator/internal/metrics"
	"github.com/PauloHFS/goth-paginator/internal/pagination"
)

const (
	DefaultCacheSize = 256
	ellipsisText     = "&hellip;"
)

type Renderer struct {
	labels    LabelProvider
	sanitizer *sanitizer
	ariaLabel string
}

type Option func(*rendererConfig)

type rendererConfig struct {
	cacheSize int
	ariaLabel string
}

// WithCacheSize sets how many sanitized label fragments are kept.
func WithCacheSize(n int) Option {
	return func(c *rendererConfig) { c.cacheSize = n }
}

func WithAriaLabel(s string) Option {
	return func(c *rendererConfig) { c.ariaLabel = s }
}

func NewRenderer(labels LabelProvider, opts ...Option) *Renderer {
	cfg := rendererConfig{cacheSize: DefaultCacheSize, ariaLabel: "Pagination"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if labels == nil {
		labels = StaticLabels(Labels{Previous: "&laquo;", Next: "&raquo;"})
	}
	return &Renderer{
		labels:    labels,
		sanitizer: newSanitizer(cfg.cacheSize),
		ariaLabel: cfg.ariaLabel,
	}
}

// Component renders p as a <nav> fragment. Nothing is written when p has
// a single page or none.
func (r *Renderer) Component(p pagination.Paginator, style Style) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		start := time.Now()
		defer func() {
			metrics.RenderDuration.WithLabelValues(string(style)).Observe(time.Since(start).Seconds())
		}()

		th, ok := themes[style]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, style)
		}
		return r.render(ctx, w, p, th)
	})
}

func (r *Renderer) render(ctx context.Context, w io.Writer, p pagination.Paginator, th theme) error {
	pages := p.Pages()
	if len(pages) == 0 {
		return nil
	}

	labels := r.labels.Labels(ctx)
	b := &strings.Builder{}

	b.WriteString("<nav")
	attr(b, "class", th.nav)
	attr(b, "aria-label", r.ariaLabel)
	b.WriteString(">")

	if labels.Summary != "" {
		if first, ok := p.FirstItemIndex(); ok {
			last, _ := p.LastItemIndex()
			b.WriteString("<p")
			attr(b, "class", th.summary)
			b.WriteString(">")
			b.WriteString(templ.EscapeString(fmt.Sprintf(labels.Summary, first, last, p.TotalItems())))
			b.WriteString("</p>")
		}
	}

	b.WriteString("<ul")
	attr(b, "class", th.list)
	b.WriteString(">")

	if u := p.PreviousURL(); u != "" {
		linkItem(b, th, u, r.sanitizer.sanitize(labels.Previous), "prev", "")
	}

	for _, pg := range pages {
		switch {
		case pg.Ellipsis:
			b.WriteString("<li")
			attr(b, "class", th.itemDisabled)
			b.WriteString("><span")
			attr(b, "class", th.ellipsis)
			b.WriteString(">" + ellipsisText + "</span></li>")
		case pg.IsCurrent:
			b.WriteString("<li")
			attr(b, "class", th.itemActive)
			b.WriteString("><span")
			attr(b, "class", th.current)
			b.WriteString(` aria-current="page">`)
			b.WriteString(strconv.Itoa(pg.Number))
			b.WriteString("</span></li>")
		default:
			n := strconv.Itoa(pg.Number)
			linkItem(b, th, pg.URL, n, "", pageLabel(labels.Page, n))
		}
	}

	if u := p.NextURL(); u != "" {
		linkItem(b, th, u, r.sanitizer.sanitize(labels.Next), "next", "")
	}

	b.WriteString("</ul></nav>")

	_, err := io.WriteString(w, b.String())
	return err
}

// pageLabel is "Página 7", or empty when no page label is configured.
func pageLabel(label, n string) string {
	if label == "" {
		return ""
	}
	return label + " " + n
}

// linkItem writes an <li><a>. body must already be safe HTML.
func linkItem(b *strings.Builder, th theme, href, body, rel, ariaLabel string) {
	b.WriteString("<li")
	attr(b, "class", th.item)
	b.WriteString("><a")
	attr(b, "class", th.link)
	attr(b, "href", string(templ.URL(href)))
	attr(b, "rel", rel)
	attr(b, "aria-label", ariaLabel)
	b.WriteString(">")
	b.WriteString(body)
	b.WriteString("</a></li>")
}

func attr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(value))
	b.WriteString(`"`)
}
