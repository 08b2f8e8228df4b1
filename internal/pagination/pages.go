package pagination

// Page is one entry of the page list. Ellipsis entries have Number 0.
type Page struct {
	Number    int    `json:"number,omitempty"`
	URL       string `json:"url,omitempty"`
	IsCurrent bool   `json:"is_current"`
	Ellipsis  bool   `json:"ellipsis,omitempty"`
}

// Target é a página para onde o item aponta. Reticências e a página atual
// não têm destino.
func (pg Page) Target() (int, bool) {
	if pg.Ellipsis || pg.IsCurrent {
		return 0, false
	}
	return pg.Number, true
}

func (p Paginator) page(n int) Page {
	pg := Page{Number: n, IsCurrent: n == p.currentPage}
	if !pg.IsCurrent {
		pg.URL = p.PageURL(n)
	}
	return pg
}

// Pages returns the pages to display. First and last pages are always
// present once the total exceeds MaxPagesToShow; the pages between them
// slide around the current page with ellipses marking the gaps. Ellipsis
// markers do not count towards MaxPagesToShow.
func (p Paginator) Pages() []Page {
	if p.numPages <= 1 {
		return nil
	}

	if p.numPages <= p.maxPagesToShow {
		pages := make([]Page, 0, p.numPages)
		for i := 1; i <= p.numPages; i++ {
			pages = append(pages, p.page(i))
		}
		return pages
	}

	numAdjacent := (p.maxPagesToShow - 3) / 2

	// Any current page below 1 yields the same window as page 1, so
	// clamping keeps current-numAdjacent from wrapping.
	current := max(p.currentPage, 1)

	var slidingStart int
	if current > p.numPages-numAdjacent {
		slidingStart = p.numPages - p.maxPagesToShow + 2
	} else {
		slidingStart = current - numAdjacent
	}
	if slidingStart < 2 {
		slidingStart = 2
	}

	slidingEnd := p.numPages - 1
	if slidingStart <= slidingEnd-(p.maxPagesToShow-3) {
		slidingEnd = slidingStart + p.maxPagesToShow - 3
	}

	pages := make([]Page, 0, max(slidingEnd-slidingStart+1, 0)+4)
	pages = append(pages, p.page(1))
	if slidingStart > 2 {
		pages = append(pages, Page{Ellipsis: true})
	}
	for i := slidingStart; i <= slidingEnd; i++ {
		pages = append(pages, p.page(i))
	}
	if slidingEnd < p.numPages-1 {
		pages = append(pages, Page{Ellipsis: true})
	}
	pages = append(pages, p.page(p.numPages))

	return pages
}
