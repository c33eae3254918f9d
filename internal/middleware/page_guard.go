package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

type PageGuardConfig struct {
	Prefixes  []string
	LoginPath string
}

// underPrefix matches "/admin" and "/admin/..." but not "/administrator".
func underPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// PageGuard redirects unauthenticated page requests under a protected prefix
// to the login page, keeping the original path and query in ?next=.
func PageGuard(verifier SessionVerifier, cfg PageGuardConfig) gin.HandlerFunc {
	loginPath := cfg.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}

	return func(c *gin.Context) {
		if !underPrefix(c.Request.URL.Path, cfg.Prefixes) {
			c.Next()
			return
		}

		cookie, err := c.Cookie(verifier.CookieName())
		if err == nil {
			if id, verr := verifier.Verify(cookie); verr == nil {
				setIdentity(c, id)
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusFound, loginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}
