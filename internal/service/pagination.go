package service

// Pagination describes one page of a filtered result set. NextPage and
// PrevPage are nil when there is no such page.
type Pagination struct {
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	Total    int64 `json:"total"`
	NextPage *int  `json:"next_page"`
	PrevPage *int  `json:"prev_page"`
}

func paginate(page, perPage int, total int64) Pagination {
	p := Pagination{Page: page, PerPage: perPage, Total: total}
	if int64(page*perPage) < total {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}

// normalizePageParams clamps page and perPage to sane values, keeping the
// 1-based page contract.
func normalizePageParams(page, perPage, defaultPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}
