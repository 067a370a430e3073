package request_test

import (
	"encoding/json"
	"testing"

	"go-ems/internal/shared/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPK_UnmarshalJSON(t *testing.T) {
	type body struct {
		Company request.PK `json:"company"`
	}

	cases := []struct {
		raw  string
		want request.PK
	}{
		{`{"company":7}`, 7},
		{`{"company":"7"}`, 7},
		{`{"company":null}`, 0},
		{`{"company":""}`, 0},
		{`{}`, 0},
	}

	for _, tc := range cases {
		var b body
		err := json.Unmarshal([]byte(tc.raw), &b)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, b.Company, tc.raw)
	}
}

func TestPK_RejectsNonNumeric(t *testing.T) {
	var b struct {
		Company request.PK `json:"company"`
	}

	for _, raw := range []string{`{"company":"abc"}`, `{"company":-1}`, `{"company":1.5}`, `{"company":true}`, `{"company":" 7 "}`} {
		err := json.Unmarshal([]byte(raw), &b)

		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, err, &typeErr, raw)
		assert.Equal(t, "company", typeErr.Field, raw)
	}
}
