package entity

import (
	"time"

	"github.com/opticore/optipos/internal/domain/enum"
)

// Product mirrors the store API's inventory record. The terminal treats it
// as backend-owned state: reads render it, writes go through the gateway and
// the list is re-fetched afterwards.
type Product struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	SKU           string               `json:"sku"`
	Category      enum.ProductCategory `json:"category"`
	Price         float64              `json:"price"`
	StockQuantity int                  `json:"stockQuantity"`
	ImageURL      string               `json:"imageUrl,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// StockIncrement is the additive stock adjustment payload. The increment is
// sent as a delta, never an absolute quantity, so two terminals restocking
// concurrently cannot overwrite each other.
type StockIncrement struct {
	AdditionalStock int `json:"additionalStock"`
}
