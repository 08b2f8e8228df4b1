// Package pagination calcula os metadados de paginação de uma listagem:
// total de páginas, janela deslizante de páginas visíveis e links de
// anterior/próxima. Um Paginator é um valor imutável; cada WithX devolve
// uma cópia com NumPages recalculado.
package pagination

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// NumPlaceholder is replaced by the page number in URLPattern.
	NumPlaceholder = "(:num)"

	DefaultMaxPagesToShow = 10
	MinMaxPagesToShow     = 3
)

type Options struct {
	TotalItems     int    `validate:"gte=0"`
	ItemsPerPage   int    `validate:"gte=0"`
	CurrentPage    int
	MaxPagesToShow int    `validate:"omitempty,gte=3"`
	URLPattern     string
}

type Paginator struct {
	totalItems     int
	itemsPerPage   int
	currentPage    int
	maxPagesToShow int
	urlPattern     string
	numPages       int
}

// New valida opts e devolve o Paginator. MaxPagesToShow zero usa o padrão.
func New(opts Options) (Paginator, error) {
	if opts.MaxPagesToShow == 0 {
		opts.MaxPagesToShow = DefaultMaxPagesToShow
	}
	if err := validateOptions(opts); err != nil {
		return Paginator{}, err
	}

	p := Paginator{
		totalItems:     opts.TotalItems,
		itemsPerPage:   opts.ItemsPerPage,
		currentPage:    opts.CurrentPage,
		maxPagesToShow: opts.MaxPagesToShow,
		urlPattern:     opts.URLPattern,
	}
	p.recompute()
	return p, nil
}

// MustNew is New for literals known to be valid.
func MustNew(opts Options) Paginator {
	p, err := New(opts)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Paginator) recompute() {
	if p.itemsPerPage == 0 {
		p.numPages = 0
		return
	}
	p.numPages = p.totalItems / p.itemsPerPage
	if p.totalItems%p.itemsPerPage != 0 {
		p.numPages++
	}
}

func (p Paginator) WithMaxPagesToShow(n int) (Paginator, error) {
	if n < MinMaxPagesToShow {
		return p, fmt.Errorf("%w: maxPagesToShow must be at least %d, got %d", ErrInvalidConfiguration, MinMaxPagesToShow, n)
	}
	p.maxPagesToShow = n
	return p, nil
}

func (p Paginator) WithTotalItems(n int) (Paginator, error) {
	if n < 0 {
		return p, fmt.Errorf("%w: totalItems must not be negative, got %d", ErrInvalidConfiguration, n)
	}
	p.totalItems = n
	p.recompute()
	return p, nil
}

func (p Paginator) WithItemsPerPage(n int) (Paginator, error) {
	if n < 0 {
		return p, fmt.Errorf("%w: itemsPerPage must not be negative, got %d", ErrInvalidConfiguration, n)
	}
	p.itemsPerPage = n
	p.recompute()
	return p, nil
}

func (p Paginator) WithCurrentPage(n int) Paginator {
	p.currentPage = n
	return p
}

func (p Paginator) WithURLPattern(pattern string) Paginator {
	p.urlPattern = pattern
	return p
}

func (p Paginator) TotalItems() int     { return p.totalItems }
func (p Paginator) ItemsPerPage() int   { return p.itemsPerPage }
func (p Paginator) CurrentPage() int    { return p.currentPage }
func (p Paginator) MaxPagesToShow() int { return p.maxPagesToShow }
func (p Paginator) URLPattern() string  { return p.urlPattern }
func (p Paginator) NumPages() int       { return p.numPages }

// PageURL substitui o placeholder pelo número da página. Nenhuma outra
// parte do padrão é codificada.
func (p Paginator) PageURL(n int) string {
	return strings.ReplaceAll(p.urlPattern, NumPlaceholder, strconv.Itoa(n))
}

// inRange reports whether the current page is within [1, numPages].
func (p Paginator) inRange() bool {
	return p.currentPage >= 1 && p.currentPage <= p.numPages
}

// PreviousPage and NextPage compare before stepping so a current page near
// the int limits never wraps.
func (p Paginator) PreviousPage() (int, bool) {
	if p.currentPage < 2 || p.currentPage-1 > p.numPages {
		return 0, false
	}
	return p.currentPage - 1, true
}

func (p Paginator) NextPage() (int, bool) {
	if p.currentPage < 0 || p.currentPage >= p.numPages {
		return 0, false
	}
	return p.currentPage + 1, true
}

// PreviousURL returns "" when there is no previous page.
func (p Paginator) PreviousURL() string {
	if n, ok := p.PreviousPage(); ok {
		return p.PageURL(n)
	}
	return ""
}

// NextURL returns "" when there is no next page.
func (p Paginator) NextURL() string {
	if n, ok := p.NextPage(); ok {
		return p.PageURL(n)
	}
	return ""
}

// FirstItemIndex é o índice (base 1) do primeiro item da página atual.
// Fora de [1, NumPages] não há itens; com a página dentro do intervalo o
// produto não passa de TotalItems.
func (p Paginator) FirstItemIndex() (int, bool) {
	if !p.inRange() {
		return 0, false
	}
	return (p.currentPage-1)*p.itemsPerPage + 1, true
}

func (p Paginator) LastItemIndex() (int, bool) {
	first, ok := p.FirstItemIndex()
	if !ok {
		return 0, false
	}
	if p.totalItems-first < p.itemsPerPage {
		return p.totalItems, true
	}
	return first + p.itemsPerPage - 1, true
}

// Offset and Limit map the current page onto a query window. Pages below
// the first are clamped to it; offsets past math.MaxInt saturate.
func (p Paginator) Offset() int {
	page := p.currentPage
	if page < 1 {
		page = 1
	}
	if p.itemsPerPage > 0 && page-1 > math.MaxInt/p.itemsPerPage {
		return math.MaxInt
	}
	return (page - 1) * p.itemsPerPage
}

func (p Paginator) Limit() int {
	return p.itemsPerPage
}

func (p Paginator) String() string {
	return fmt.Sprintf("page %d of %d (%d items, %d per page)", p.currentPage, p.numPages, p.totalItems, p.itemsPerPage)
}
