// mirror/worker.go
package mirror

import (
    "bytes"
    "fmt"
    "path/filepath"
    "strings"

    "github.com/PuerkitoBio/goquery"

    "websnap/models"
    "websnap/utils"
)

// pageWorker drains the page queue. Exactly one runs per save, so pages
// are fetched, parsed, and rewritten strictly one at a time.
func (r *run) pageWorker() {
    defer r.wg.Done()
    for {
        select {
        case <-r.ctx.Done():
            return
        case task, ok := <-r.pages:
            if !ok {
                return
            }
            r.runTask("page", func() { r.processPage(task) })
        }
    }
}

// resourceWorker drains the resource queue.
func (r *run) resourceWorker() {
    defer r.wg.Done()
    for {
        select {
        case <-r.ctx.Done():
            return
        case u, ok := <-r.resources:
            if !ok {
                return
            }
            r.runTask("resource", func() { r.processResource(u) })
        }
    }
}

// runTask runs one unit of work, keeping the barrier accounting correct
// on every exit path. A panicking task is logged and counted as failed;
// it never takes the worker down.
func (r *run) runTask(kind string, fn func()) {
    defer func() {
        if p := recover(); p != nil {
            r.events.Log(fmt.Sprintf("%s worker error: %v", kind, p))
            r.state.recordFailure()
        }
        r.taskDone()
    }()
    fn()
}

// taskDone retires one unit of outstanding work. Units are only added
// while the task discovering them is itself still outstanding, so the
// counter reaches zero exactly once, after the last task.
func (r *run) taskDone() {
    if r.outstanding.Add(-1) == 0 {
        close(r.pages)
        close(r.resources)
    }
}

// enqueuePage claims u and queues it for the page worker. The claim, the
// estimate bump, and the outstanding increment all happen before the
// send, so the barrier can never see the queues drain early.
func (r *run) enqueuePage(u string, depth int) {
    total, ok := r.state.claimPage(u)
    if !ok {
        return
    }
    r.events.TotalFiles(total)
    r.outstanding.Add(1)

    task := models.PageTask{URL: u, Domain: r.domain, Depth: depth}
    select {
    case r.pages <- task:
    default:
        // The page worker feeds its own queue; a full channel must not
        // block it, so the overflow send moves off the worker.
        go func() {
            select {
            case r.pages <- task:
            case <-r.ctx.Done():
                r.taskDone()
            }
        }()
    }
}

// enqueueResource claims u and queues it for a resource worker.
func (r *run) enqueueResource(u string) {
    total, ok := r.state.claimResource(u)
    if !ok {
        return
    }
    r.events.TotalFiles(total)
    r.outstanding.Add(1)

    select {
    case r.resources <- u:
    case <-r.ctx.Done():
        r.taskDone()
    }
}

// processPage fetches an HTML page, extracts and rewrites its references,
// and saves the result. Links occasionally lead to non-HTML payloads;
// those are saved as plain files.
func (r *run) processPage(task models.PageTask) {
    if r.ctx.Err() != nil {
        return
    }

    raw, contentType, err := r.fetch.fetchBytes(r.ctx, task.URL)
    if err != nil {
        if r.ctx.Err() != nil {
            return
        }
        if task.URL == r.seed {
            r.seedErr = err
        }
        r.state.recordFailure()
        r.events.Log(fmt.Sprintf("page download failed %s: %v", task.URL, err))
        return
    }

    rel := utils.LocalRelPath(task.URL)
    lower := strings.ToLower(contentType)

    var (
        abs  string
        size int64
    )
    switch {
    case strings.Contains(lower, "text/html"):
        text := decodeText(raw, contentType)
        out := text
        if r.mode != models.ModeCurrentPage {
            doc, derr := goquery.NewDocumentFromReader(strings.NewReader(text))
            if derr == nil {
                out, derr = r.extractAndRewrite(doc, text, task.URL, task.Depth)
            }
            if derr != nil {
                r.state.recordFailure()
                r.events.Log(fmt.Sprintf("page download failed %s: %v", task.URL, derr))
                return
            }
        }
        abs, size, err = r.store.WriteText(rel, out)
    case strings.Contains(lower, "text/"):
        abs, size, err = r.store.WriteText(rel, decodeText(raw, contentType))
    default:
        abs, size, err = r.store.WriteStream(rel, bytes.NewReader(raw))
    }
    if err != nil {
        r.state.recordFailure()
        r.events.Log(fmt.Sprintf("page download failed %s: %v", task.URL, err))
        return
    }

    saved, total := r.state.recordSaved(size)
    r.events.Progress(saved, total, task.URL)
    r.events.FileSaved(models.SavedFile{Name: filepath.Base(abs), Path: abs, Size: size})
    if strings.Contains(lower, "text/html") {
        r.events.Log(fmt.Sprintf("page saved: %s (depth %d)", task.URL, task.Depth))
    } else {
        r.events.Log(fmt.Sprintf("resource saved: %s", task.URL))
    }
}

// processResource downloads one embedded asset.
func (r *run) processResource(rawURL string) {
    if r.ctx.Err() != nil {
        return
    }

    file, err := r.fetch.download(r.ctx, rawURL, utils.LocalRelPath(rawURL), r.store)
    if err != nil {
        if r.ctx.Err() != nil {
            return
        }
        saved, total := r.state.recordFailure()
        r.events.Progress(saved, total, fmt.Sprintf("download failed: %s - %v", rawURL, err))
        return
    }

    saved, total := r.state.recordSaved(file.Size)
    r.events.Progress(saved, total, rawURL)
    r.events.FileSaved(file)
}
