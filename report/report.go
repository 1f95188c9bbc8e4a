// report/report.go
package report

import (
    "fmt"
    "log"
    "strings"
    "sync"
    "time"

    "websnap/models"
)

// Console reports run progress through a logger and keeps the saved-file
// list for the closing summary.
type Console struct {
    mu     sync.Mutex
    logger *log.Logger
    files  []models.SavedFile
}

func NewConsole() *Console {
    return &Console{logger: log.Default()}
}

func (c *Console) Progress(completed, total int, label string) {
    c.logger.Printf("[%d/%d] %s", completed, total, label)
}

func (c *Console) Log(msg string) {
    c.logger.Println(msg)
}

func (c *Console) TotalFiles(total int) {}

func (c *Console) FileSaved(f models.SavedFile) {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.files = append(c.files, f)
}

func (c *Console) Finished(ok bool, msg string) {
    if ok {
        c.logger.Printf("✅ %s", msg)
    } else {
        c.logger.Printf("❌ %s", msg)
    }
}

// Summary prints the closing table for a finished run.
func (c *Console) Summary(stats *models.RunStats) {
    c.mu.Lock()
    files := make([]models.SavedFile, len(c.files))
    copy(files, c.files)
    c.mu.Unlock()

    fmt.Println("\n📊 Download Summary")
    fmt.Println("===================")
    fmt.Printf("%-12s %s\n", "Run:", stats.RunID)
    fmt.Printf("%-12s %d\n", "Files saved:", stats.FilesSaved)
    fmt.Printf("%-12s %d\n", "Failures:", stats.Failures)
    fmt.Printf("%-12s %s\n", "Total size:", FormatSize(stats.TotalBytes))
    fmt.Printf("%-12s %v\n", "Duration:", stats.Duration.Round(time.Millisecond))

    if len(files) == 0 {
        return
    }
    fmt.Println("\n📁 Saved Files")
    fmt.Println("==============")
    fmt.Printf("%-30s %10s  %s\n", "Name", "Size", "Path")
    fmt.Println(strings.Repeat("-", 65))
    for _, f := range files {
        fmt.Printf("%-30s %10s  %s\n", f.Name, FormatSize(f.Size), f.Path)
    }
}

// FormatSize renders a byte count with one decimal, capped at gigabytes.
func FormatSize(bytes int64) string {
    if bytes == 0 {
        return "0B"
    }
    size := float64(bytes)
    for _, unit := range []string{"B", "KB", "MB"} {
        if size < 1024 {
            return fmt.Sprintf("%.1f%s", size, unit)
        }
        size /= 1024
    }
    return fmt.Sprintf("%.1fGB", size)
}
