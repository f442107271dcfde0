package auth

import (
	"net/http"
	"time"

	"feedback-admin/internal/middleware"
)

// Session 決定 JWT 簽章與 cookie 屬性
type Session struct {
	Secret     string
	TTL        time.Duration
	Production bool
}

// cookie 產生 session cookie；maxAge < 0 代表清除
func (s Session) cookie(value string, maxAge int) *http.Cookie {
	ck := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.Production,
		SameSite: http.SameSiteLaxMode,
	}
	if s.Production {
		ck.SameSite = http.SameSiteStrictMode
	}
	if maxAge < 0 {
		ck.Expires = time.Unix(0, 0)
	}
	return ck
}
