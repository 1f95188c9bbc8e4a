// models/models.go
package models

import (
    "fmt"
    "time"
)

// Mode selects how far a run follows links away from the start page.
type Mode string

const (
    // ModeCurrentPage saves the start page only, exactly as fetched.
    ModeCurrentPage Mode = "current-page"
    // ModeDepthLimited follows same-domain links up to MaxDepth hops.
    ModeDepthLimited Mode = "depth-limited"
    // ModeAllPages follows same-domain links without a depth bound.
    ModeAllPages Mode = "all-pages"
)

func ParseMode(s string) (Mode, error) {
    switch Mode(s) {
    case ModeCurrentPage, ModeDepthLimited, ModeAllPages:
        return Mode(s), nil
    }
    return "", fmt.Errorf("invalid mode %q: use 'current-page', 'depth-limited', or 'all-pages'", s)
}

// PageTask is one page waiting to be fetched and parsed. Depth counts
// link hops from the start page; the seed has depth 0.
type PageTask struct {
    URL    string
    Domain string
    Depth  int
}

// SavedFile describes one file persisted to disk. Size is the on-disk
// byte count read back after the write, not the transfer length.
type SavedFile struct {
    Name string `json:"name"`
    Path string `json:"path"`
    Size int64  `json:"size"`
}

type RunStats struct {
    RunID      string        `json:"run_id"`
    FilesSaved int           `json:"files_saved"`
    Failures   int           `json:"failures"`
    TotalBytes int64         `json:"total_bytes"`
    Duration   time.Duration `json:"duration"`
}
