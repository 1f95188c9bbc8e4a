// mirror/state_test.go
package mirror

import (
    "sync"
    "testing"
)

func TestClaimResourceOnce(t *testing.T) {
    rs := newRunState()
    const workers = 20

    var (
        wg   sync.WaitGroup
        mu   sync.Mutex
        wins int
    )
    for i := 0; i < workers; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            if _, ok := rs.claimResource("https://example.com/style.css"); ok {
                mu.Lock()
                wins++
                mu.Unlock()
            }
        }()
    }
    wg.Wait()

    if wins != 1 {
        t.Fatalf("url claimed %d times, want exactly once", wins)
    }
    if _, total := rs.progress(); total != 1 {
        t.Fatalf("total = %d, want 1", total)
    }
}

func TestClaimedURLStaysClaimedAcrossKinds(t *testing.T) {
    rs := newRunState()
    if _, ok := rs.claimPage("https://example.com/"); !ok {
        t.Fatal("first page claim refused")
    }
    if _, ok := rs.claimResource("https://example.com/"); ok {
        t.Fatal("url claimed as page was claimed again as resource")
    }
    if _, ok := rs.claimPage("https://example.com/"); ok {
        t.Fatal("url claimed as page was claimed again as page")
    }
    if _, ok := rs.claimResource("https://example.com/logo.png"); !ok {
        t.Fatal("resource claim refused")
    }
    if _, ok := rs.claimPage("https://example.com/logo.png"); ok {
        t.Fatal("url claimed as resource was claimed again as page")
    }
    if _, total := rs.progress(); total != 2 {
        t.Fatalf("total = %d, want 2", total)
    }
}

func TestCountersTrackOutcomes(t *testing.T) {
    rs := newRunState()
    rs.claimPage("https://example.com/")
    rs.claimResource("https://example.com/a.css")
    rs.claimResource("https://example.com/b.css")

    saved, total := rs.recordSaved(100)
    if saved != 1 || total != 3 {
        t.Fatalf("after first save got (%d, %d), want (1, 3)", saved, total)
    }
    rs.recordSaved(50)
    saved, total = rs.recordFailure()
    if saved != 2 || total != 3 {
        t.Fatalf("after failure got (%d, %d), want (2, 3)", saved, total)
    }

    stats := rs.totals()
    if stats.FilesSaved != 2 || stats.Failures != 1 || stats.TotalBytes != 150 {
        t.Fatalf("totals = %+v, want 2 saved, 1 failure, 150 bytes", stats)
    }
}
