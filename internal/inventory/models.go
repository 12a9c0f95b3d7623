package inventory

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	MinStock    int       `json:"min_stock"`
	Unit        Unit      `json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
	Supplier    string    `json:"supplier"`
}

// ProductInput is a Product minus the fields the store generates itself.
type ProductInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Code        string  `json:"code"`
	MinStock    int     `json:"min_stock"`
	Unit        Unit    `json:"unit"`
	Supplier    string  `json:"supplier"`
}

// State is the aggregate root. It is serialized in full on every mutation;
// there is no partial or delta persistence.
type State struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}
