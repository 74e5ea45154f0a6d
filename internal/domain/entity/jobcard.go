package entity

import (
	"time"

	"github.com/opticore/optipos/internal/domain/enum"
)

// JobCard is a lab-order record tracking fulfillment of a prescription-based
// product through its fixed status sequence. The prescription is a snapshot
// taken at order time, independent of later edits to the sale line.
type JobCard struct {
	ID           string            `json:"id"`
	JobNumber    string            `json:"job_number"`
	CustomerID   string            `json:"customer_id"`
	Customer     *Customer         `json:"customer,omitempty"`
	Status       enum.JobStatus    `json:"status"`
	DeliveryDate *time.Time        `json:"delivery_date,omitempty"`
	Prescription *PrescriptionData `json:"prescription_snapshot,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	ImageURL     string            `json:"image,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
