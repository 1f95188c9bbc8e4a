package utils

import "testing"

func TestInScope(t *testing.T) {
    domain := "example.com"

    accepted := []string{
        "http://example.com/",
        "https://example.com/path/page",
        "http://example.com/page?q=1#frag",
    }
    for _, u := range accepted {
        if !InScope(u, domain) {
            t.Errorf("InScope(%q, %q) = false, want true", u, domain)
        }
    }

    rejected := []string{
        "",
        "javascript:void(0)",
        "mailto:someone@example.com",
        "http://other.com/",
        "http://www.example.com/",
        "http://example.com:8080/",
        "http://EXAMPLE.com/",
        "/relative/path",
    }
    for _, u := range rejected {
        if InScope(u, domain) {
            t.Errorf("InScope(%q, %q) = true, want false", u, domain)
        }
    }
}

func TestAbsoluteURL(t *testing.T) {
    cases := []struct {
        base, ref, want string
    }{
        {"http://example.com/dir/page", "style.css", "http://example.com/dir/style.css"},
        {"http://example.com/dir/page", "/top.css", "http://example.com/top.css"},
        {"http://example.com/dir/", "../up.png", "http://example.com/up.png"},
        {"https://example.com/a", "//example.com/b", "https://example.com/b"},
        {"http://example.com/a", "http://other.com/x", "http://other.com/x"},
        {"http://example.com/a", "javascript:void(0)", "javascript:void(0)"},
    }
    for _, c := range cases {
        if got := AbsoluteURL(c.base, c.ref); got != c.want {
            t.Errorf("AbsoluteURL(%q, %q) = %q, want %q", c.base, c.ref, got, c.want)
        }
    }
}

func TestLocalRelPath(t *testing.T) {
    cases := []struct {
        url, want string
    }{
        {"http://example.com", "index.html"},
        {"http://example.com/", "index.html"},
        {"http://example.com/about", "about"},
        {"http://example.com/a/", "a/index.html"},
        {"http://example.com/a/b/style.css", "a/b/style.css"},
        {"http://example.com/%E4%B8%AD%E6%96%87/", "中文/index.html"},
    }
    for _, c := range cases {
        if got := LocalRelPath(c.url); got != c.want {
            t.Errorf("LocalRelPath(%q) = %q, want %q", c.url, got, c.want)
        }
    }
}

// URLs that differ only by query or fragment collide on one local file.
func TestLocalRelPathQueryCollision(t *testing.T) {
    base := LocalRelPath("http://example.com/page")
    for _, u := range []string{
        "http://example.com/page?v=1",
        "http://example.com/page?v=2",
        "http://example.com/page#section",
    } {
        if got := LocalRelPath(u); got != base {
            t.Errorf("LocalRelPath(%q) = %q, want %q", u, got, base)
        }
    }
}

func TestLocalRelPathIdempotent(t *testing.T) {
    u := "http://example.com/a/b/"
    first := LocalRelPath(u)
    second := LocalRelPath(u)
    if first != second {
        t.Errorf("LocalRelPath not stable: %q then %q", first, second)
    }
}

func TestIsResourcePath(t *testing.T) {
    matches := []string{
        "http://example.com/style.css",
        "http://example.com/app.js?v=3",
        "http://example.com/img/logo.PNG",
        "http://example.com/fonts/main.woff",
    }
    for _, u := range matches {
        if !IsResourcePath(u) {
            t.Errorf("IsResourcePath(%q) = false, want true", u)
        }
    }

    misses := []string{
        "http://example.com/",
        "http://example.com/about",
        "http://example.com/index.php",
        "http://example.com/download",
    }
    for _, u := range misses {
        if IsResourcePath(u) {
            t.Errorf("IsResourcePath(%q) = true, want false", u)
        }
    }
}
