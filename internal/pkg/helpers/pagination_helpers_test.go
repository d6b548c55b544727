package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"both provided", "limit=25&offset=50", 25, 50},
		{"missing both", "", DefaultLimit, 0},
		{"malformed limit", "limit=abc&offset=10", DefaultLimit, 10},
		{"negative offset", "limit=10&offset=-3", 10, 0},
		{"zero limit", "limit=0", DefaultLimit, 0},
		{"limit above cap", "limit=9999", DefaultLimit, 0},
		{"limit at cap", "limit=500", 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := ParseLimitOffset(testContext(tt.query))
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("got (%d, %d), want (%d, %d)", limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
