package pagination

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantPages int
		wantErr   bool
	}{
		{"Primeira página", Options{TotalItems: 25, ItemsPerPage: 10, CurrentPage: 1}, 3, false},
		{"Divisão exata", Options{TotalItems: 100, ItemsPerPage: 10, CurrentPage: 1}, 10, false},
		{"Arredonda para cima", Options{TotalItems: 95, ItemsPerPage: 10, CurrentPage: 1}, 10, false},
		{"Zero itens", Options{TotalItems: 0, ItemsPerPage: 10, CurrentPage: 1}, 0, false},
		{"Zero por página", Options{TotalItems: 50, ItemsPerPage: 0, CurrentPage: 1}, 0, false},
		{"Total negativo", Options{TotalItems: -1, ItemsPerPage: 10}, 0, true},
		{"Por página negativo", Options{TotalItems: 10, ItemsPerPage: -5}, 0, true},
		{"Janela pequena demais", Options{TotalItems: 10, ItemsPerPage: 1, MaxPagesToShow: 2}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("expected ErrInvalidConfiguration, got %v", err)
				}
				return
			}
			if p.NumPages() != tt.wantPages {
				t.Errorf("NumPages() = %v, want %v", p.NumPages(), tt.wantPages)
			}
		})
	}
}

func TestNew_DefaultMaxPagesToShow(t *testing.T) {
	p := MustNew(Options{TotalItems: 10, ItemsPerPage: 1})
	if p.MaxPagesToShow() != DefaultMaxPagesToShow {
		t.Errorf("MaxPagesToShow() = %d, want %d", p.MaxPagesToShow(), DefaultMaxPagesToShow)
	}
}

func TestNumPagesFormula(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for perPage := 0; perPage <= 12; perPage++ {
			p := MustNew(Options{TotalItems: total, ItemsPerPage: perPage, CurrentPage: 1})

			want := 0
			if perPage > 0 {
				want = (total + perPage - 1) / perPage
			}
			if p.NumPages() != want {
				t.Fatalf("total=%d perPage=%d: NumPages() = %d, want %d", total, perPage, p.NumPages(), want)
			}
		}
	}
}

func TestWithMaxPagesToShow(t *testing.T) {
	p := MustNew(Options{TotalItems: 100, ItemsPerPage: 10, CurrentPage: 1})

	if _, err := p.WithMaxPagesToShow(2); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("WithMaxPagesToShow(2) error = %v, want ErrInvalidConfiguration", err)
	}

	q, err := p.WithMaxPagesToShow(3)
	if err != nil {
		t.Fatalf("WithMaxPagesToShow(3) error = %v", err)
	}
	if q.MaxPagesToShow() != 3 {
		t.Errorf("MaxPagesToShow() = %d, want 3", q.MaxPagesToShow())
	}
	if p.MaxPagesToShow() != DefaultMaxPagesToShow {
		t.Error("original paginator must not change")
	}
}

func TestWithRecomputesNumPages(t *testing.T) {
	p := MustNew(Options{TotalItems: 100, ItemsPerPage: 10, CurrentPage: 1})

	p, err := p.WithItemsPerPage(25)
	if err != nil {
		t.Fatal(err)
	}
	if p.NumPages() != 4 {
		t.Errorf("after WithItemsPerPage(25): NumPages() = %d, want 4", p.NumPages())
	}

	p, err = p.WithTotalItems(101)
	if err != nil {
		t.Fatal(err)
	}
	if p.NumPages() != 5 {
		t.Errorf("after WithTotalItems(101): NumPages() = %d, want 5", p.NumPages())
	}

	p, err = p.WithItemsPerPage(0)
	if err != nil {
		t.Fatal(err)
	}
	if p.NumPages() != 0 {
		t.Errorf("after WithItemsPerPage(0): NumPages() = %d, want 0", p.NumPages())
	}

	if _, err := p.WithTotalItems(-3); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("WithTotalItems(-3) error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestPagination_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		wantPrev int
		hasPrev  bool
		wantNext int
		hasNext  bool
	}{
		{"Primeira página", 1, 0, false, 2, true},
		{"Página do meio", 50, 49, true, 51, true},
		{"Última página", 100, 99, true, 0, false},
		{"Além da última", 150, 0, false, 0, false},
		{"Página zero", 0, 0, false, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(Options{TotalItems: 1000, ItemsPerPage: 10, CurrentPage: tt.current})

			prev, ok := p.PreviousPage()
			if ok != tt.hasPrev || prev != tt.wantPrev {
				t.Errorf("PreviousPage() = %d, %v, want %d, %v", prev, ok, tt.wantPrev, tt.hasPrev)
			}
			next, ok := p.NextPage()
			if ok != tt.hasNext || next != tt.wantNext {
				t.Errorf("NextPage() = %d, %v, want %d, %v", next, ok, tt.wantNext, tt.hasNext)
			}
		})
	}
}

func TestPageURL(t *testing.T) {
	p := MustNew(Options{TotalItems: 100, ItemsPerPage: 10, CurrentPage: 3, URLPattern: "/list?page=(:num)&q=a"})

	if got := p.PageURL(7); got != "/list?page=7&q=a" {
		t.Errorf("PageURL(7) = %q", got)
	}
	if got := p.PreviousURL(); got != "/list?page=2&q=a" {
		t.Errorf("PreviousURL() = %q", got)
	}
	if got := p.NextURL(); got != "/list?page=4&q=a" {
		t.Errorf("NextURL() = %q", got)
	}

	first := p.WithCurrentPage(1)
	if got := first.PreviousURL(); got != "" {
		t.Errorf("PreviousURL() on first page = %q, want empty", got)
	}

	noPattern := p.WithURLPattern("")
	if got := noPattern.PageURL(2); got != "" {
		t.Errorf("PageURL with empty pattern = %q, want empty", got)
	}

	repeated := p.WithURLPattern("/p/(:num)?ref=(:num)")
	if got := repeated.PageURL(5); got != "/p/5?ref=5" {
		t.Errorf("PageURL with repeated placeholder = %q", got)
	}
}

func TestItemIndexes(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		wantFirst int
		wantLast  int
		ok        bool
	}{
		{"Primeira página", 1, 1, 10, true},
		{"Página do meio", 5, 41, 50, true},
		{"Última página parcial", 10, 91, 95, true},
		{"Além da última", 11, 0, 0, false},
		{"Página zero", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(Options{TotalItems: 95, ItemsPerPage: 10, CurrentPage: tt.current})

			first, ok := p.FirstItemIndex()
			if ok != tt.ok || first != tt.wantFirst {
				t.Errorf("FirstItemIndex() = %d, %v, want %d, %v", first, ok, tt.wantFirst, tt.ok)
			}
			last, ok := p.LastItemIndex()
			if ok != tt.ok || last != tt.wantLast {
				t.Errorf("LastItemIndex() = %d, %v, want %d, %v", last, ok, tt.wantLast, tt.ok)
			}
		})
	}
}

func TestOffsetLimit(t *testing.T) {
	p := MustNew(Options{TotalItems: 95, ItemsPerPage: 10, CurrentPage: 3})
	if p.Offset() != 20 || p.Limit() != 10 {
		t.Errorf("Offset/Limit = %d/%d, want 20/10", p.Offset(), p.Limit())
	}
	if got := p.WithCurrentPage(-4).Offset(); got != 0 {
		t.Errorf("Offset() for negative page = %d, want 0", got)
	}
}

func TestNumPages_Extremes(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{"Total máximo", math.MaxInt, 1, math.MaxInt},
		{"Acima da precisão de float64", 1<<53 + 1, 1, 1<<53 + 1},
		{"Total máximo arredonda para cima", math.MaxInt, 2, math.MaxInt/2 + 1},
		{"Por página máximo", math.MaxInt, math.MaxInt, 1},
		{"Um item e por página máximo", 1, math.MaxInt, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(Options{TotalItems: tt.total, ItemsPerPage: tt.perPage, CurrentPage: 1})
			if p.NumPages() != tt.want {
				t.Errorf("NumPages() = %d, want %d", p.NumPages(), tt.want)
			}
		})
	}
}

func TestPagination_NavigationExtremes(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		current  int
		wantPrev int
		hasPrev  bool
		wantNext int
		hasNext  bool
	}{
		{"Página máxima", 1000, math.MaxInt, 0, false, 0, false},
		{"Página mínima", 1000, math.MinInt, 0, false, 0, false},
		{"Última de total máximo", math.MaxInt, math.MaxInt, math.MaxInt - 1, true, 0, false},
		{"Penúltima de total máximo", math.MaxInt, math.MaxInt - 1, math.MaxInt - 2, true, math.MaxInt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perPage := 10
			if tt.total == math.MaxInt {
				perPage = 1
			}
			p := MustNew(Options{TotalItems: tt.total, ItemsPerPage: perPage, CurrentPage: tt.current})

			prev, ok := p.PreviousPage()
			if ok != tt.hasPrev || prev != tt.wantPrev {
				t.Errorf("PreviousPage() = %d, %v, want %d, %v", prev, ok, tt.wantPrev, tt.hasPrev)
			}
			next, ok := p.NextPage()
			if ok != tt.hasNext || next != tt.wantNext {
				t.Errorf("NextPage() = %d, %v, want %d, %v", next, ok, tt.wantNext, tt.hasNext)
			}
		})
	}
}

func TestItemIndexes_Extremes(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		perPage   int
		current   int
		wantFirst int
		wantLast  int
		ok        bool
	}{
		{"Página que estouraria o produto", 1000, 10, math.MaxInt/10 + 2, 0, 0, false},
		{"Página máxima", 1000, 10, math.MaxInt, 0, 0, false},
		{"Página mínima", 1000, 10, math.MinInt, 0, 0, false},
		{"Zero por página", 50, 0, 1, 0, 0, false},
		{"Última de total máximo", math.MaxInt, 1, math.MaxInt, math.MaxInt, math.MaxInt, true},
		{"Última parcial de total máximo", math.MaxInt, 10, math.MaxInt/10 + 1, math.MaxInt/10*10 + 1, math.MaxInt, true},
		{"Por página maior que o resto", math.MaxInt, math.MaxInt / 2, 2, math.MaxInt/2 + 1, math.MaxInt - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(Options{TotalItems: tt.total, ItemsPerPage: tt.perPage, CurrentPage: tt.current})

			first, ok := p.FirstItemIndex()
			if ok != tt.ok || first != tt.wantFirst {
				t.Errorf("FirstItemIndex() = %d, %v, want %d, %v", first, ok, tt.wantFirst, tt.ok)
			}
			last, ok := p.LastItemIndex()
			if ok != tt.ok || last != tt.wantLast {
				t.Errorf("LastItemIndex() = %d, %v, want %d, %v", last, ok, tt.wantLast, tt.ok)
			}
		})
	}
}

func TestOffset_Saturates(t *testing.T) {
	p := MustNew(Options{TotalItems: 1000, ItemsPerPage: 10, CurrentPage: math.MaxInt})
	if got := p.Offset(); got != math.MaxInt {
		t.Errorf("Offset() = %d, want math.MaxInt", got)
	}
}
