package model

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 1000
)

type PageParams struct {
	Limit  int
	Offset int
}

// Normalize bounds the window so list queries are never unbounded.
func (p PageParams) Normalize() PageParams {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

type Page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
