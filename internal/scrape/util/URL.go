package util

import (
	"net/url"
	"strings"
)

// hosts that serve X profiles; all of them collapse to x.com
var xHosts = map[string]bool{
	"x.com":              true,
	"www.x.com":          true,
	"mobile.x.com":       true,
	"twitter.com":        true,
	"www.twitter.com":    true,
	"mobile.twitter.com": true,
}

// NormalizeProfileURL turns a profile href into the dedup key: relative hrefs
// are resolved against origin, then fragment, query and trailing slashes go.
// Scheme and host are lowercased. X and twitter.com links become x.com with
// a lowercased path; other paths keep their case.
func NormalizeProfileURL(raw, origin string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}

	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") && origin != "" {
		raw = strings.TrimRight(origin, "/") + raw
	}

	u, err := url.Parse(raw)
	if err == nil && u.Host != "" {
		u.Scheme = strings.ToLower(u.Scheme)
		u.Host = strings.ToLower(u.Host)
		if xHosts[u.Host] {
			// X handles are case-insensitive
			u.Scheme = "https"
			u.Host = "x.com"
			u.Path = strings.ToLower(u.Path)
			u.RawPath = ""
		}
		u.RawQuery = ""
		u.Fragment = ""
		raw = u.String()
	}

	return strings.TrimRight(raw, "/")
}

// LastPathSegment returns the final non-empty path segment ("sanjoor-prem"
// for ".../in/sanjoor-prem/").
func LastPathSegment(profileURL string) string {
	p := profileURL
	if u, err := url.Parse(profileURL); err == nil && u.Host != "" {
		p = u.Path
	}
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		p = p[i+1:]
	}
	if s, err := url.PathUnescape(p); err == nil {
		p = s
	}
	return strings.TrimSpace(p)
}

// QueryEscape encodes a search keyword. Spaces become %20, matching what the
// search pages themselves produce.
func QueryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
