// mirror/fetch.go
package mirror

import (
    "context"
    "fmt"
    "io"
    "mime"
    "net/http"
    "path/filepath"
    "strings"
    "time"

    "golang.org/x/net/html/charset"

    "websnap/models"
    "websnap/storage"
)

type fetcher struct {
    client *http.Client
    pacer  *pacer
    agent  string
}

func newFetcher(timeout time.Duration, p *pacer, agent string) *fetcher {
    return &fetcher{
        client: &http.Client{
            Timeout: timeout,
            Transport: &http.Transport{
                MaxIdleConns:        100,
                MaxIdleConnsPerHost: 10,
                IdleConnTimeout:     90 * time.Second,
            },
        },
        pacer: p,
        agent: agent,
    }
}

// get paces, then issues the request and checks the status. The request
// carries no cancellation context: a cancelled run lets in-flight
// transfers finish and stops at the next task boundary, with the client
// timeout bounding the transfer.
func (f *fetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
    if err := f.pacer.Wait(ctx); err != nil {
        return nil, err
    }

    req, err := http.NewRequest(http.MethodGet, rawURL, nil)
    if err != nil {
        return nil, err
    }
    req.Header.Set("User-Agent", f.agent)

    resp, err := f.client.Do(req)
    if err != nil {
        return nil, err
    }

    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        resp.Body.Close()
        return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
    }

    return resp, nil
}

// fetchBytes downloads rawURL fully into memory and returns the body
// alongside the response Content-Type.
func (f *fetcher) fetchBytes(ctx context.Context, rawURL string) ([]byte, string, error) {
    resp, err := f.get(ctx, rawURL)
    if err != nil {
        return nil, "", err
    }
    defer resp.Body.Close()

    raw, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, "", err
    }

    return raw, resp.Header.Get("Content-Type"), nil
}

// download fetches rawURL and persists it at rel beneath the store. Text
// bodies are re-encoded to UTF-8; everything else streams to disk
// unchanged.
func (f *fetcher) download(ctx context.Context, rawURL, rel string, store *storage.Store) (models.SavedFile, error) {
    resp, err := f.get(ctx, rawURL)
    if err != nil {
        return models.SavedFile{}, err
    }
    defer resp.Body.Close()

    contentType := resp.Header.Get("Content-Type")

    var (
        abs  string
        size int64
    )
    if strings.Contains(strings.ToLower(contentType), "text/") {
        raw, rerr := io.ReadAll(resp.Body)
        if rerr != nil {
            return models.SavedFile{}, rerr
        }
        abs, size, err = store.WriteText(rel, decodeText(raw, contentType))
    } else {
        abs, size, err = store.WriteStream(rel, resp.Body)
    }
    if err != nil {
        return models.SavedFile{}, err
    }

    return models.SavedFile{Name: filepath.Base(abs), Path: abs, Size: size}, nil
}

// decodeText converts raw to UTF-8 using the declared charset, except
// that an absent or Latin-1 declaration hands the decision to detection
// over the bytes themselves (BOM, then meta prescan, then the
// Latin-1-family fallback). Bytes that do not decode become replacement
// runes rather than errors.
func decodeText(raw []byte, contentType string) string {
    enc, _, _ := charset.DetermineEncoding(raw, dropLatin1Charset(contentType))
    decoded, err := enc.NewDecoder().Bytes(raw)
    if err != nil {
        return string(raw)
    }
    return string(decoded)
}

// dropLatin1Charset removes an ISO-8859-1 charset parameter from a
// Content-Type value. Servers that send one are usually echoing the HTTP
// default rather than describing the body.
func dropLatin1Charset(contentType string) string {
    mediaType, params, err := mime.ParseMediaType(contentType)
    if err != nil {
        return contentType
    }

    switch strings.ToLower(params["charset"]) {
    case "iso-8859-1", "latin-1", "latin1":
        delete(params, "charset")
        return mime.FormatMediaType(mediaType, params)
    }

    return contentType
}
