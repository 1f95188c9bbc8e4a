package storage

import (
    "bytes"
    "os"
    "path/filepath"
    "testing"
)

func TestWriteTextCreatesDirectories(t *testing.T) {
    store, err := New(t.TempDir())
    if err != nil {
        t.Fatalf("New: %v", err)
    }

    abs, size, err := store.WriteText("a/b/index.html", "<html></html>")
    if err != nil {
        t.Fatalf("WriteText: %v", err)
    }
    if want := int64(len("<html></html>")); size != want {
        t.Errorf("size = %d, want %d", size, want)
    }

    data, err := os.ReadFile(abs)
    if err != nil {
        t.Fatalf("ReadFile: %v", err)
    }
    if string(data) != "<html></html>" {
        t.Errorf("content = %q", data)
    }
    if filepath.Dir(abs) != filepath.Join(store.Root(), "a", "b") {
        t.Errorf("file written to %s", abs)
    }
}

func TestWriteTextIdempotent(t *testing.T) {
    store, err := New(t.TempDir())
    if err != nil {
        t.Fatalf("New: %v", err)
    }

    if _, _, err := store.WriteText("page", "one"); err != nil {
        t.Fatalf("first write: %v", err)
    }
    abs, size, err := store.WriteText("page", "two")
    if err != nil {
        t.Fatalf("second write: %v", err)
    }
    if size != 3 {
        t.Errorf("size = %d, want 3", size)
    }
    data, _ := os.ReadFile(abs)
    if string(data) != "two" {
        t.Errorf("content = %q, want overwrite", data)
    }
}

func TestWriteStreamRoundTrip(t *testing.T) {
    store, err := New(t.TempDir())
    if err != nil {
        t.Fatalf("New: %v", err)
    }

    payload := bytes.Repeat([]byte{0x00, 0xff, 0x10}, 5000)
    abs, size, err := store.WriteStream("img/blob.png", bytes.NewReader(payload))
    if err != nil {
        t.Fatalf("WriteStream: %v", err)
    }
    if size != int64(len(payload)) {
        t.Errorf("size = %d, want %d", size, len(payload))
    }

    data, err := os.ReadFile(abs)
    if err != nil {
        t.Fatalf("ReadFile: %v", err)
    }
    if !bytes.Equal(data, payload) {
        t.Error("stream content does not match payload")
    }
}
