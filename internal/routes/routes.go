package routes

const (
	Home           = "/"
	Pagination     = "/pagination"
	PaginationJSON = "/pagination.json"
	Health         = "/health"
	Metrics        = "/metrics"
)
