package request

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
)

// PK is a primary-key reference in a request body. Browser forms send the
// id of a <select> option as a string, so both 1 and "1" are accepted;
// null and "" decode to zero and fail a required rule.
type PK uint

func (p *PK) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}

	raw := string(b)
	kind := "number"
	if len(b) > 0 && b[0] == '"' {
		kind = "string"
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if raw == "" {
			*p = 0
			return nil
		}
	}

	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return &json.UnmarshalTypeError{Value: kind + " " + raw, Type: reflect.TypeOf(*p)}
	}
	*p = PK(v)
	return nil
}
