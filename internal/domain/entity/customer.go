package entity

import (
	"time"

	"github.com/opticore/optipos/internal/domain/enum"
)

// Customer mirrors the store API's customer record. Aggregate totals are
// computed server-side and rendered as-is.
type Customer struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Phone          string            `json:"phone"`
	Address        string            `json:"address,omitempty"`
	Email          string            `json:"email,omitempty"`
	CustomerType   enum.CustomerType `json:"customer_type"`
	TotalPurchases float64           `json:"total_purchases"`
	TotalVisits    int               `json:"total_visits"`
	CreatedAt      time.Time         `json:"created_at"`
}
