package view

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/PauloHFS/goth-paginator/internal/metrics"
)

// Labels are the navigation texts, already resolved for the request
// locale. Previous and Next are HTML fragments; Page is plain text used in
// the aria-label of numbered links; Summary is a format string taking
// first item, last item and total.
type Labels struct {
	Previous string
	Next     string
	Page     string
	Summary  string
}

type LabelProvider interface {
	Labels(ctx context.Context) Labels
}

// LabelFunc adapts a function to LabelProvider.
type LabelFunc func(ctx context.Context) Labels

func (f LabelFunc) Labels(ctx context.Context) Labels { return f(ctx) }

// StaticLabels always returns the same labels.
func StaticLabels(l Labels) LabelProvider {
	return LabelFunc(func(context.Context) Labels { return l })
}

// labelPolicy keeps inline formatting only.
func labelPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "small", "span")
	p.AllowAttrs("class").OnElements("span", "i")
	p.AllowAttrs("aria-hidden").Matching(bluemonday.Paragraph).OnElements("span", "i")
	return p
}

// sanitizer memoizes sanitized label fragments.
type sanitizer struct {
	policy *bluemonday.Policy
	cache  *lru.Cache[string, string]
}

func newSanitizer(size int) *sanitizer {
	cache, err := lru.New[string, string](size)
	if err != nil {
		cache, _ = lru.New[string, string](DefaultCacheSize)
	}
	return &sanitizer{policy: labelPolicy(), cache: cache}
}

func (s *sanitizer) sanitize(fragment string) string {
	if fragment == "" {
		return ""
	}
	if v, ok := s.cache.Get(fragment); ok {
		metrics.LabelCacheResults.WithLabelValues("hit").Inc()
		return v
	}
	metrics.LabelCacheResults.WithLabelValues("miss").Inc()
	clean := s.policy.Sanitize(fragment)
	s.cache.Add(fragment, clean)
	return clean
}
