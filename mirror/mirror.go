// mirror/mirror.go
package mirror

import (
    "context"
    "fmt"
    "net/url"
    "path/filepath"
    "sync"
    "sync/atomic"
    "time"

    "github.com/google/uuid"

    "websnap/models"
    "websnap/storage"
)

const (
    defaultTimeout   = 10 * time.Second
    defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
    queueCapacity    = 1000
)

// Options configure a Saver. Zero values fall back to the defaults the
// CLI exposes: current-page mode, depth 1, two resource workers, no
// request spacing.
type Options struct {
    Mode         models.Mode
    MaxDepth     int
    Workers      int           // resource workers; pages always get exactly one
    RateInterval time.Duration // minimum spacing between any two requests
    Timeout      time.Duration // per request; the run itself is unbounded
    UserAgent    string
    SaveRoot     string // parent of saved_websites; cwd when empty
}

// Saver mirrors websites to local disk. It holds configuration only;
// every Save call builds a fresh run context, so a Saver can be reused
// and concurrent runs share nothing.
type Saver struct {
    opts   Options
    events Events
}

// New builds a Saver reporting to events. A nil events sink is replaced
// with NopEvents.
func New(events Events, opts Options) *Saver {
    if events == nil {
        events = NopEvents{}
    }
    if opts.Mode == "" {
        opts.Mode = models.ModeCurrentPage
    }
    if opts.MaxDepth <= 0 {
        opts.MaxDepth = 1
    }
    if opts.Workers < 1 {
        opts.Workers = 2
    }
    if opts.RateInterval < 0 {
        opts.RateInterval = 0
    }
    if opts.Timeout <= 0 {
        opts.Timeout = defaultTimeout
    }
    if opts.UserAgent == "" {
        opts.UserAgent = defaultUserAgent
    }
    return &Saver{opts: opts, events: events}
}

// run carries everything the workers of one Save call share. Nothing in
// it outlives the call.
type run struct {
    id       string
    ctx      context.Context
    seed     string
    domain   string
    mode     models.Mode
    maxDepth int

    state  *runState
    fetch  *fetcher
    store  *storage.Store
    events Events

    pages     chan models.PageTask
    resources chan string

    // outstanding counts enqueued-but-unfinished tasks. The decrement
    // that reaches zero closes both queues, which is the completion
    // signal the workers drain on.
    outstanding atomic.Int64
    wg          sync.WaitGroup

    // seedErr is set by the page worker when the start page itself
    // cannot be fetched; read only after wg.Wait.
    seedErr error
}

// Save mirrors startURL according to the Saver's options. It blocks until
// every claimed task has finished or the context is cancelled.
// Cancellation is cooperative: in-flight transfers finish, queued tasks
// are dropped, and the returned stats cover whatever completed. The only
// error cases are an invalid start URL, an unwritable save directory, and
// an unreachable start page.
func (s *Saver) Save(ctx context.Context, startURL string) (*models.RunStats, error) {
    started := time.Now()

    u, err := url.Parse(startURL)
    if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
        err = fmt.Errorf("invalid start url %q", startURL)
        s.events.Finished(false, fmt.Sprintf("download failed: %v", err))
        return nil, err
    }
    domain := u.Host

    store, err := storage.New(filepath.Join(s.opts.SaveRoot, "saved_websites", domain))
    if err != nil {
        s.events.Finished(false, fmt.Sprintf("download failed: %v", err))
        return nil, err
    }

    r := &run{
        id:        uuid.NewString(),
        ctx:       ctx,
        seed:      startURL,
        domain:    domain,
        mode:      s.opts.Mode,
        maxDepth:  s.opts.MaxDepth,
        state:     newRunState(),
        fetch:     newFetcher(s.opts.Timeout, newPacer(s.opts.RateInterval), s.opts.UserAgent),
        store:     store,
        events:    s.events,
        pages:     make(chan models.PageTask, queueCapacity),
        resources: make(chan string, queueCapacity),
    }

    r.events.Log(fmt.Sprintf("run %s: saving %s", r.id, startURL))
    r.events.Log(fmt.Sprintf("files will be saved to %s", store.Root()))
    r.events.Log(fmt.Sprintf("request interval %v, %d resource workers", s.opts.RateInterval, s.opts.Workers))
    switch r.mode {
    case models.ModeCurrentPage:
        r.events.Log("mode: current page only")
    case models.ModeDepthLimited:
        r.events.Log(fmt.Sprintf("mode: follow links to depth %d", r.maxDepth))
    case models.ModeAllPages:
        r.events.Log("mode: all pages on the site")
    }

    total, _ := r.state.claimPage(startURL)
    r.events.TotalFiles(total)
    r.outstanding.Add(1)
    r.pages <- models.PageTask{URL: startURL, Domain: domain, Depth: 0}

    r.wg.Add(1 + s.opts.Workers)
    go r.pageWorker()
    for i := 0; i < s.opts.Workers; i++ {
        go r.resourceWorker()
    }
    r.wg.Wait()

    stats := r.state.totals()
    stats.RunID = r.id
    stats.Duration = time.Since(started)

    if ctx.Err() != nil {
        r.events.Finished(false, "download cancelled")
        return &stats, nil
    }

    if r.seedErr != nil {
        err := fmt.Errorf("start page unreachable: %w", r.seedErr)
        r.events.Finished(false, fmt.Sprintf("download failed: %v", err))
        return nil, err
    }

    _, total = r.state.progress()
    r.events.Progress(total, total, "download complete")
    r.events.Log(fmt.Sprintf("run %s: saved %d files (%d failed)", r.id, stats.FilesSaved, stats.Failures))
    r.events.Finished(true, "download complete!")
    return &stats, nil
}
