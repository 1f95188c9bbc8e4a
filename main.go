package main

import (
    "context"
    "flag"
    "log"
    "os"
    "os/signal"
    "syscall"
    "time"

    "websnap/config"
    "websnap/mirror"
    "websnap/models"
    "websnap/report"
)

func main() {
    // Command line flags
    var (
        url     = flag.String("url", "", "Starting URL to save")
        mode    = flag.String("mode", "current-page", "Save mode: 'current-page', 'depth-limited', or 'all-pages'")
        depth   = flag.Int("depth", 1, "Maximum link depth in depth-limited mode")
        workers = flag.Int("workers", 2, "Number of concurrent resource downloads")
        delay   = flag.Float64("delay", 0, "Minimum seconds between any two requests")
    )
    flag.Parse()

    if *url == "" {
        log.Fatal("missing required -url flag")
    }

    saveMode, err := models.ParseMode(*mode)
    if err != nil {
        log.Fatalf("Invalid mode: %v", err)
    }

    // Load configuration
    cfg := config.Load()

    // Setup graceful shutdown
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    go func() {
        sigChan := make(chan os.Signal, 1)
        signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
        <-sigChan
        log.Println("Shutting down gracefully...")
        cancel()
    }()

    console := report.NewConsole()
    saver := mirror.New(console, mirror.Options{
        Mode:         saveMode,
        MaxDepth:     *depth,
        Workers:      *workers,
        RateInterval: time.Duration(*delay * float64(time.Second)),
        Timeout:      time.Duration(cfg.RequestTimeout) * time.Second,
        UserAgent:    cfg.UserAgent,
        SaveRoot:     cfg.SaveRoot,
    })

    stats, err := saver.Save(ctx, *url)
    if err != nil {
        log.Fatalf("Save failed: %v", err)
    }
    console.Summary(stats)
}
