package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	payload := []byte("%PDF fake content")
	size, err := store.Save(context.Background(), "res-1/photosystem_ii.pdf", "application/pdf", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len(payload)) {
		t.Fatalf("expected size %d, got %d", len(payload), size)
	}

	reader, err := store.Open(context.Background(), "res-1/photosystem_ii.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestSaveRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"../escape.pdf", "/abs/path.pdf", "."} {
		if _, err := store.Save(context.Background(), key, "application/pdf", strings.NewReader("data")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestOpenMissingObject(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Open(context.Background(), "missing/file.pdf"); err == nil {
		t.Fatalf("expected error for missing object")
	}
}
