package object

import (
	"io"
	"strings"
	"testing"
)

func TestNewKeyNamespacesByUser(t *testing.T) {
	a, err := NewKey("guest:abc", "Jane Resume.pdf")
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	b, err := NewKey("guest:abc", "Jane Resume.pdf")
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	if a == b {
		t.Fatalf("expected unique keys, got %s twice", a)
	}
	dirA, _, _ := strings.Cut(a, "/")
	dirB, _, _ := strings.Cut(b, "/")
	if dirA != dirB || len(dirA) != 32 {
		t.Fatalf("expected shared hashed user dir, got %q and %q", dirA, dirB)
	}
	if !strings.HasSuffix(a, "_Jane Resume.pdf") {
		t.Fatalf("expected sanitized file name suffix, got %s", a)
	}
}

func TestNewKeyRejectsTraversal(t *testing.T) {
	if _, err := NewKey("user-1", "../../etc/passwd"); err == nil {
		t.Fatal("expected error for traversal file name")
	}
}

func TestSniffReplaysHead(t *testing.T) {
	body := "%PDF-1.4\n" + strings.Repeat("x", 2000)
	mimeType, r, err := Sniff(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Sniff: %v", err)
	}
	if mimeType != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", mimeType)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != body {
		t.Fatalf("expected full body replayed, got %d bytes", len(got))
	}
}
