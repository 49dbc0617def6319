package catalog

import "time"

// Category groups products in the warehouse catalog.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is one catalog item.
type Product struct {
	ID         string
	CategoryID string
	Name       string
	Unit       *string
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	CategoryName *string
}
