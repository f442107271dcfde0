package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	e := echo.New()
	for val, ok := range map[string]bool{
		"0b6f1c1e-7d43-4b47-9a3c-5f1f3c9e2a10": true,
		"0B6F1C1E-7D43-4B47-9A3C-5F1F3C9E2A10": true,
		"42":                                   false,
		"":                                     false,
		"zzzz":                                 false,
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(val)
		id, got := ParseID(c, "id")
		require.Equal(t, ok, got, val)
		if ok {
			require.Equal(t, "0b6f1c1e-7d43-4b47-9a3c-5f1f3c9e2a10", id)
		}
	}
}
