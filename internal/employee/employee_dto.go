package employee

import (
	"bytes"
	"encoding/json"

	"go-ems/internal/shared/request"
)

// Profile is the employee half of a registration payload. It is validated
// only after the credential exists, so it carries no binding on the outer
// request.
type Profile struct {
	FirstName   string     `json:"first_name" binding:"required,max=30"`
	LastName    string     `json:"last_name" binding:"required,max=30"`
	PhoneNumber string     `json:"phone_number" binding:"required,max=15"`
	Address     string     `json:"address" binding:"required,max=300"`
	Company     request.PK `json:"company" binding:"required"`
	Department  request.PK `json:"department" binding:"required"`
	DateHired   string     `json:"date_hired" binding:"required,datetime=2006-01-02"`
	Salary      Amount     `json:"salary" binding:"required"`
}

// Amount holds the salary exactly as sent, number or string, so a bad value
// is reported against the field instead of failing the whole body.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		*a = Amount(b)
	}
	return nil
}
