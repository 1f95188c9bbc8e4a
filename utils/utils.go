package utils

import (
    "net/url"
    "strings"
)

// Extensions that mark an <a href> target as a plain asset rather than a
// page. Best-effort: extension-less asset endpoints still pass as pages.
var resourceExtensions = []string{
    ".css", ".js", ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".ico",
    ".svg", ".woff", ".ttf", ".eot",
}

// InScope reports whether rawURL belongs to the run. Pseudo-URLs are
// rejected outright; everything else must carry an authority exactly
// equal to the run's initial domain. No case or default-port
// normalization is applied, so "Example.com" and "example.com:80" are
// both out of scope for a run on "example.com".
func InScope(rawURL, domain string) bool {
    if rawURL == "" || strings.HasPrefix(rawURL, "javascript:") || strings.HasPrefix(rawURL, "mailto:") {
        return false
    }

    u, err := url.Parse(rawURL)
    if err != nil {
        return false
    }

    return u.Host != "" && u.Host == domain
}

// AbsoluteURL resolves ref against baseURL. An empty result means one of
// the two did not parse.
func AbsoluteURL(baseURL, ref string) string {
    base, err := url.Parse(baseURL)
    if err != nil {
        return ""
    }

    rel, err := url.Parse(ref)
    if err != nil {
        return ""
    }

    return base.ResolveReference(rel).String()
}

// LocalRelPath maps an absolute URL to the slash-separated path of its
// local file, relative to the site's save root. The mapping mirrors the
// site's directory layout: percent-escapes are decoded, a root or
// trailing-slash path becomes index.html inside its directory. Query and
// fragment are ignored, so URLs differing only there share one file.
func LocalRelPath(rawURL string) string {
    p := ""
    if u, err := url.Parse(rawURL); err == nil {
        p = u.Path
    }

    if p == "" || p == "/" {
        p = "/index.html"
    } else if strings.HasSuffix(p, "/") {
        p += "index.html"
    }

    return strings.TrimPrefix(p, "/")
}

// IsResourcePath reports whether rawURL's path ends in a known asset
// extension.
func IsResourcePath(rawURL string) bool {
    u, err := url.Parse(rawURL)
    if err != nil {
        return false
    }

    p := strings.ToLower(u.Path)
    for _, ext := range resourceExtensions {
        if strings.HasSuffix(p, ext) {
            return true
        }
    }

    return false
}
