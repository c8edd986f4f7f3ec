package storage

import (
	"bytes"
	"context"
	"testing"
)

func TestFileStoreWriteRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	key, err := store.Write(context.Background(), "exports/artbot-image-export.zip", []byte("zipbytes"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "exports/artbot-image-export.zip" {
		t.Fatalf("unexpected key: %s", key)
	}
	data, err := store.Read(context.Background(), key)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(data, []byte("zipbytes")) {
		t.Fatalf("round trip mismatch")
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Write(context.Background(), "../escape.zip", []byte("x")); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if _, err := store.Read(context.Background(), ""); err == nil {
		t.Fatalf("expected empty key to be rejected")
	}
}
