package entity

import (
	"encoding/json"
	"time"

	"github.com/opticore/optipos/internal/domain/enum"
)

// PermissionList is the user's permission codes. Depending on how the store
// API serialized the record, the payload arrives either as a native JSON
// array or as a JSON-encoded string containing one; decoding normalizes both
// shapes here so nothing downstream ever branches on representation.
type PermissionList []string

// UnmarshalJSON accepts ["POS","SALES"] as well as "[\"POS\",\"SALES\"]".
func (p *PermissionList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*p = nil
		return nil
	}

	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		if inner == "" {
			*p = nil
			return nil
		}
		data = []byte(inner)
	}

	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	*p = codes
	return nil
}

// Set returns the permissions as a membership set.
func (p PermissionList) Set() map[string]bool {
	set := make(map[string]bool, len(p))
	for _, code := range p {
		set[code] = true
	}
	return set
}

// User mirrors the store API's user record.
type User struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Role        enum.Role      `json:"role"`
	Permissions PermissionList `json:"permissions"`
	CreatedAt   time.Time      `json:"created_at"`
}

// HasPermission reports whether the user may perform the gated action. ADMIN
// (and the ADMINISTRATIVE superset role) passes every check regardless of the
// permission set, including an empty one.
func (u *User) HasPermission(code string) bool {
	if u.Role.BypassesPermissionChecks() {
		return true
	}
	for _, c := range u.Permissions {
		if c == code {
			return true
		}
	}
	return false
}
