package mirror

import (
    "sync"

    "websnap/models"
)

// runState is the shared ledger of one run: the claim and visited sets,
// the moving file-count estimate, and the completion counters. A single
// mutex guards all of it so a claim and its estimate bump are one atomic
// step, which is what keeps two workers discovering the same URL from
// double-queueing it.
type runState struct {
    mu       sync.Mutex
    claimed  map[string]bool
    visited  map[string]bool
    total    int
    saved    int
    failures int
    bytes    int64
}

func newRunState() *runState {
    return &runState{
        claimed: make(map[string]bool),
        visited: make(map[string]bool),
    }
}

// claimResource claims u for download. ok reports whether u was
// previously unclaimed; total is the estimate after the call.
func (rs *runState) claimResource(u string) (total int, ok bool) {
    rs.mu.Lock()
    defer rs.mu.Unlock()

    if rs.claimed[u] {
        return rs.total, false
    }
    rs.claimed[u] = true
    rs.total++
    return rs.total, true
}

// claimPage is claimResource plus the visited marker that distinguishes
// page URLs inside the claimed set.
func (rs *runState) claimPage(u string) (total int, ok bool) {
    rs.mu.Lock()
    defer rs.mu.Unlock()

    if rs.claimed[u] || rs.visited[u] {
        return rs.total, false
    }
    rs.claimed[u] = true
    rs.visited[u] = true
    rs.total++
    return rs.total, true
}

func (rs *runState) recordSaved(size int64) (saved, total int) {
    rs.mu.Lock()
    defer rs.mu.Unlock()

    rs.saved++
    rs.bytes += size
    return rs.saved, rs.total
}

func (rs *runState) recordFailure() (saved, total int) {
    rs.mu.Lock()
    defer rs.mu.Unlock()

    rs.failures++
    return rs.saved, rs.total
}

func (rs *runState) progress() (saved, total int) {
    rs.mu.Lock()
    defer rs.mu.Unlock()
    return rs.saved, rs.total
}

func (rs *runState) totals() models.RunStats {
    rs.mu.Lock()
    defer rs.mu.Unlock()
    return models.RunStats{
        FilesSaved: rs.saved,
        Failures:   rs.failures,
        TotalBytes: rs.bytes,
    }
}
