package models

import "github.com/graph-gophers/graphql-go"

// --- Stock ---

type Stock struct {
	Article    graphql.ID  `json:"article"`
	Name       string      `json:"name"`
	Price      string      `json:"price"`
	Quantity   int32       `json:"quantity"`
	CategoryID *graphql.ID `json:"category_id,omitempty"`
}

type StockList struct {
	Items      []*Stock  `json:"items"`
	TotalCount int32     `json:"total_count"`
	PageInfo   *PageInfo `json:"page_info"`
}

type PageInfo struct {
	PageSize    int32 `json:"page_size"`
	CurrentPage int32 `json:"current_page"`
	TotalPages  int32 `json:"total_pages"`
}

// --- Category ---

type Category struct {
	ID       graphql.ID   `json:"id"`
	Name     string       `json:"name"`
	ParentID *graphql.ID  `json:"parent_id"`
	Children *[]*Category `json:"children,omitempty"`
}

// --- Cargo / shipment ---

// Line is one (article, quantity) pair of a cargo or shipment.
type Line struct {
	Article  graphql.ID `json:"article"`
	Name     string     `json:"name"`
	Quantity int32      `json:"quantity"`
}

type Shipment struct {
	ID        graphql.ID `json:"id"`
	Status    string     `json:"status"`
	Customer  string     `json:"customer"`
	CreatedAt string     `json:"created_at"`
	Notified  bool       `json:"notified"`
	Lines     []*Line    `json:"lines"`
	Total     float64    `json:"total"`
}

type Cargo struct {
	ID        graphql.ID `json:"id"`
	Status    string     `json:"status"`
	Supplier  string     `json:"supplier"`
	CreatedAt string     `json:"created_at"`
	Lines     []*Line    `json:"lines"`
	Total     float64    `json:"total"`
}

// --- Audit ---

type ActionLogEntry struct {
	ID        graphql.ID `json:"id"`
	Entity    string     `json:"entity"`
	Snapshot  string     `json:"snapshot"`
	Action    string     `json:"action"`
	CreatedAt string     `json:"created_at"`
}
