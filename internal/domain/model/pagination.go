package model

import (
	"net/url"
	"strconv"
)

// Pagination is the page metadata returned alongside list payloads.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether another page follows.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// PageRequest carries optional page/limit query parameters.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) apply(v url.Values) {
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
}

// Values encodes the page request as query parameters.
func (p PageRequest) Values() url.Values {
	v := url.Values{}
	p.apply(v)
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
