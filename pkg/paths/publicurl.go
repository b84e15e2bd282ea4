package paths

import (
	"net/url"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/environ"
)

// PublicURL returns PUBLIC_URL when it is set to a non-empty value and the
// package homepage otherwise. The result may be empty.
func PublicURL(env environ.Environ, homepage string) string {
	if v := env.Get(environ.PublicURL); v != "" {
		return v
	}
	return homepage
}

// ServedPath is the URL path the app is served from, always ending in "/".
// PUBLIC_URL is used verbatim; a homepage contributes only its path; with
// neither the app is served from "/".
func ServedPath(env environ.Environ, homepage string) string {
	if v := env.Get(environ.PublicURL); v != "" {
		return EnsureSlash(v, true)
	}
	if homepage == "" {
		return "/"
	}
	u, err := url.Parse(homepage)
	if err != nil || u.Path == "" {
		return "/"
	}
	return EnsureSlash(u.Path, true)
}

// EnsureSlash adds or removes a trailing slash
func EnsureSlash(p string, needsSlash bool) string {
	hasSlash := strings.HasSuffix(p, "/")
	switch {
	case hasSlash && !needsSlash:
		return p[:len(p)-1]
	case !hasSlash && needsSlash:
		return p + "/"
	default:
		return p
	}
}
