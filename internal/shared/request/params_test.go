package request_test

import (
	"net/http/httptest"
	"testing"

	"go-ems/internal/shared/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		raw  string
		want uint
		ok   bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: tc.raw}}

		got, ok := request.UintParam(c, "id")
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}
