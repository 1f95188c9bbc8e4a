// mirror/extract.go
package mirror

import (
    "fmt"
    "path"
    "path/filepath"
    "regexp"
    "strings"

    "github.com/PuerkitoBio/goquery"

    "websnap/models"
    "websnap/utils"
)

// resourceAttrs are the markup attributes scanned for downloadable
// assets, in processing order.
var resourceAttrs = []struct {
    tag  string
    attr string
}{
    {"link", "href"},
    {"script", "src"},
    {"img", "src"},
    {"source", "src"},
    {"audio", "src"},
    {"video", "src"},
    {"iframe", "src"},
    {"embed", "src"},
    {"object", "data"},
}

// cssURLPattern matches url(...) references in style blocks and inline
// styles. Quotes are optional.
var cssURLPattern = regexp.MustCompile(`url\(['"]?(.*?)['"]?\)`)

// extractAndRewrite claims every in-scope resource and followable link on
// a page for download, rewriting markup references to paths relative to
// the page's own directory. The rewrite applies to every in-scope
// reference whether or not this page was the one to claim it, so a shared
// asset stays reachable from each page that mentions it. Returns the
// serialized document.
func (r *run) extractAndRewrite(doc *goquery.Document, rawHTML, pageURL string, depth int) (string, error) {
    pageDir := path.Dir(utils.LocalRelPath(pageURL))

    // CSS references are queued for download but left as written; only
    // markup attributes are rewritten.
    for _, m := range cssURLPattern.FindAllStringSubmatch(rawHTML, -1) {
        ref := strings.Trim(m[1], `'"`)
        abs := utils.AbsoluteURL(pageURL, ref)
        if utils.InScope(abs, r.domain) {
            r.enqueueResource(abs)
        }
    }

    for _, ra := range resourceAttrs {
        doc.Find(fmt.Sprintf("%s[%s]", ra.tag, ra.attr)).Each(func(_ int, el *goquery.Selection) {
            ref, _ := el.Attr(ra.attr)
            abs := utils.AbsoluteURL(pageURL, ref)
            if !utils.InScope(abs, r.domain) {
                return
            }
            r.enqueueResource(abs)
            el.SetAttr(ra.attr, relativeTo(pageDir, utils.LocalRelPath(abs)))
        })
    }

    if r.followsLinks(depth) {
        doc.Find("a[href]").Each(func(_ int, el *goquery.Selection) {
            href, _ := el.Attr("href")
            abs := utils.AbsoluteURL(pageURL, href)
            if !utils.InScope(abs, r.domain) || utils.IsResourcePath(abs) {
                return
            }
            r.enqueuePage(abs, depth+1)
            el.SetAttr("href", relativeTo(pageDir, utils.LocalRelPath(abs)))
        })
    }

    return doc.Html()
}

// followsLinks reports whether anchors found at depth are followed under
// the run's mode.
func (r *run) followsLinks(depth int) bool {
    return r.mode != models.ModeCurrentPage && (r.mode == models.ModeAllPages || depth < r.maxDepth)
}

// relativeTo expresses target relative to dir, both slash-separated
// root-relative paths, as a reference usable from a file saved in dir.
func relativeTo(dir, target string) string {
    rel, err := filepath.Rel(filepath.FromSlash(dir), filepath.FromSlash(target))
    if err != nil {
        return target
    }
    return filepath.ToSlash(rel)
}
