package models

import "testing"

func TestParseMode(t *testing.T) {
    for _, s := range []string{"current-page", "depth-limited", "all-pages"} {
        m, err := ParseMode(s)
        if err != nil {
            t.Errorf("ParseMode(%q) returned error: %v", s, err)
        }
        if string(m) != s {
            t.Errorf("ParseMode(%q) = %q", s, m)
        }
    }
}

func TestParseModeRejectsUnknown(t *testing.T) {
    for _, s := range []string{"", "current_page", "everything", "depth"} {
        if _, err := ParseMode(s); err == nil {
            t.Errorf("ParseMode(%q) accepted an unknown mode", s)
        }
    }
}
