package site

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Themes understood by the stylesheet.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeCookie holds the visitor's theme choice.
const ThemeCookie = "theme"

// theme returns the visitor's theme, falling back to fallback for a missing
// or unknown cookie.
func theme(c echo.Context, fallback string) string {
	if cookie, err := c.Cookie(ThemeCookie); err == nil {
		switch cookie.Value {
		case ThemeLight, ThemeDark:
			return cookie.Value
		}
	}
	return fallback
}

func toggle(theme string) string {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// handleTheme flips the theme cookie and sends the visitor back.
func (s *Server) handleTheme(c echo.Context) error {
	next := toggle(theme(c, s.cfg.Site.Theme))
	c.SetCookie(&http.Cookie{
		Name:     ThemeCookie,
		Value:    next,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusSeeOther, backPath(c.Request().Referer()))
}

// backPath reduces a Referer to a local path so the toggle never redirects
// off site.
func backPath(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return "/"
	}
	p := u.Path
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}
