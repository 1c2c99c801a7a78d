package query

// PageRef points at a neighboring page in pagination metadata.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PageMeta is the pagination block of the response envelope.
type PageMeta struct {
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
	Total int64    `json:"total"`
	Pages int      `json:"pages"`
	Next  *PageRef `json:"next,omitempty"`
	Prev  *PageRef `json:"prev,omitempty"`
}

// BuildPageMeta derives pagination metadata from the request and the
// independently counted total.
//
// Invariants: Pages = ceil(total/limit) but never below 1, Next is present
// iff page*limit < total, Prev is present iff page > 1 and there is
// anything to page back over.
func BuildPageMeta(req PageRequest, total int64) PageMeta {
	meta := PageMeta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
		Pages: 1,
	}
	if total > 0 {
		meta.Pages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	if int64(req.Page)*int64(req.Limit) < total {
		meta.Next = &PageRef{Page: req.Page + 1, Limit: req.Limit}
	}
	if req.Page > 1 && total > 0 {
		meta.Prev = &PageRef{Page: req.Page - 1, Limit: req.Limit}
	}
	return meta
}
