package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/PauloHFS/goth-paginator/internal/config"
	"github.com/PauloHFS/goth-paginator/internal/contextkeys"
	"github.com/PauloHFS/goth-paginator/internal/pagination"
	"github.com/PauloHFS/goth-paginator/internal/view"
)

// RunRender prints one pagination fragment, or its descriptors with
// -json, using the configured defaults for anything not passed.
func RunRender(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(out)
	total := fs.Int("total", 0, "total number of items")
	page := fs.Int("page", 1, "current page")
	perPage := fs.Int("per-page", cfg.PerPage, "items per page")
	maxPages := fs.Int("max", cfg.MaxPagesToShow, "maximum page numbers to show")
	pattern := fs.String("pattern", cfg.URLPattern, "url pattern with the (:num) placeholder")
	styleName := fs.String("style", cfg.Style, "bootstrap or tailwind")
	lang := fs.String("lang", "pt", "label locale")
	asJSON := fs.Bool("json", false, "print page descriptors as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *maxPages > config.MaxPagesLimit {
		return fmt.Errorf("-max must be at most %d, got %d", config.MaxPagesLimit, *maxPages)
	}

	p, err := pagination.New(pagination.Options{
		TotalItems:     *total,
		ItemsPerPage:   *perPage,
		CurrentPage:    *page,
		MaxPagesToShow: *maxPages,
		URLPattern:     *pattern,
	})
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		pages := p.Pages()
		if pages == nil {
			pages = []pagination.Page{}
		}
		return enc.Encode(pages)
	}

	style, err := view.ParseStyle(*styleName)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ctx := context.WithValue(context.Background(), contextkeys.LocaleKey, *lang)
	if err := newRenderer(cfg, catalog).Component(p, style).Render(ctx, out); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	_, err = fmt.Fprintln(out)
	return err
}
