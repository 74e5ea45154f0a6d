package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRequestID generates an identifier for request tracing
func NewRequestID() string {
	return uuid.New().String()
}

// NewReceiptRef generates a short reference printed on receipts
func NewReceiptRef() string {
	return "RCT-" + strings.ToUpper(uuid.New().String()[:8])
}

// NewHoldID generates an identifier for a held transaction. Held snapshots
// keep the client-generated unix-millisecond convention: they have no server
// record and the timestamp doubles as the "held at" display value.
func NewHoldID() int64 {
	return time.Now().UnixMilli()
}
