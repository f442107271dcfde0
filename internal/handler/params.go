package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ParseID 讀取路徑參數並確認為合法 UUID
func ParseID(c echo.Context, name string) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return "", false
	}
	return id.String(), true
}
