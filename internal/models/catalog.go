package models

// TabAll selects every record of a catalog.
const TabAll = "all"

// ListFilter carries the tab, search and paging state of a catalog listing.
type ListFilter struct {
	Tab      string `validate:"omitempty,max=64"`
	Search   string `validate:"omitempty,max=128"`
	Page     int    `validate:"gte=1"`
	PageSize int    `validate:"gte=1"`
}
