package entity

import (
	"encoding/json"
	"strings"
)

// RxValues holds one optical measurement row. The fields are free text:
// "Plano", axis values with a trailing "L" and similar notations pass
// through untouched, so no numeric type is enforced.
type RxValues struct {
	Sph  string `json:"sph"`
	Cyl  string `json:"cyl"`
	Axis string `json:"axis"`
}

// Empty reports whether all three fields are blank. An all-empty row is
// suppressed on the printed receipt.
func (v RxValues) Empty() bool {
	return strings.TrimSpace(v.Sph) == "" &&
		strings.TrimSpace(v.Cyl) == "" &&
		strings.TrimSpace(v.Axis) == ""
}

// EyePrescription holds the distance and near rows for one eye.
type EyePrescription struct {
	Distance RxValues `json:"distance"`
	Near     RxValues `json:"near"`
}

// PrescriptionData is the optical prescription attached to a sale line item
// or job card. Purely data; the terminal performs no computation over it.
type PrescriptionData struct {
	Right    EyePrescription `json:"right"`
	Left     EyePrescription `json:"left"`
	LensType string          `json:"lensType,omitempty"`
	Remarks  string          `json:"remarks,omitempty"`
}

// HasValues reports whether any measurement field is non-empty. Line items
// whose prescription carries no values render no Rx sub-table at all.
func (p *PrescriptionData) HasValues() bool {
	if p == nil {
		return false
	}
	return !p.Right.Distance.Empty() || !p.Right.Near.Empty() ||
		!p.Left.Distance.Empty() || !p.Left.Near.Empty()
}

// ParsePrescription decodes a prescription payload that may arrive either as
// a JSON object or, depending on how the store API serialized it, as a
// JSON-encoded string containing the object. A null or empty payload yields
// nil without error; a malformed one yields an error the caller logs per
// item instead of failing the whole invoice.
func ParsePrescription(raw json.RawMessage) (*PrescriptionData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	data := raw
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, err
		}
		if strings.TrimSpace(inner) == "" {
			return nil, nil
		}
		data = []byte(inner)
	}

	var p PrescriptionData
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
