package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"staffing-backend/internal/shared/storage/object"
	localstore "staffing-backend/internal/shared/storage/object/local"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>SKILLS</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>Nursing, </w:t></w:r><w:r><w:t>ICU</w:t></w:r></w:p>` +
	`</w:body></w:document>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func buildDocx(t *testing.T) []byte {
	return buildZip(t, map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": documentRels,
	})
}

func TestExtractText_ZipDocxNormalizes(t *testing.T) {
	text, err := New().ExtractText(context.Background(), buildDocx(t), "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	want := "Jane Doe\nSKILLS\nNursing, ICU"
	if text != want {
		t.Fatalf("unexpected text:\n got %q\nwant %q", text, want)
	}
}

func TestExtractText_RealZipRejected(t *testing.T) {
	data := buildZip(t, map[string]string{"notes.txt": "hello"})

	_, err := New().ExtractText(context.Background(), data, "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractText_PlainTextCleansEncoding(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune under NFC.
	raw := []byte("Rene\u0301e Smith\n\xffICU")
	text, err := New().ExtractText(context.Background(), raw, "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("extract plain text: %v", err)
	}
	if !strings.HasPrefix(text, "Ren\u00e9e Smith") {
		t.Fatalf("expected NFC composed name, got %q", text)
	}
	if !strings.Contains(text, "\uFFFDICU") {
		t.Fatalf("expected invalid byte replaced, got %q", text)
	}
}

func TestExtractText_InvalidPDF(t *testing.T) {
	_, err := New().ExtractText(context.Background(), []byte("%PDF-1.4 truncated"), "application/pdf", "cv.pdf")
	if err == nil {
		t.Fatal("expected error for truncated pdf")
	}
}

func TestExtractText_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().ExtractText(ctx, []byte("x"), "text/plain", "a.txt"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	docx := buildDocx(t)
	tests := []struct {
		name     string
		mimeType string
		fileName string
		data     []byte
		want     string
	}{
		{name: "params stripped", mimeType: "Text/Plain; charset=utf-8", want: MimePlain},
		{name: "explicit pdf", mimeType: "application/pdf", want: MimePDF},
		{name: "octet stream pdf magic", mimeType: "application/octet-stream", data: []byte("%PDF-1.7"), want: MimePDF},
		{name: "octet stream docx content", mimeType: "application/octet-stream", data: docx, want: MimeDOCX},
		{name: "extension fallback", mimeType: "application/octet-stream", fileName: "cv.TXT", data: []byte("abc"), want: MimePlain},
		{name: "empty mime sniffed", mimeType: "", data: []byte("plain words"), want: MimePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMimeType(tt.mimeType, tt.fileName, tt.data); got != tt.want {
				t.Fatalf("NormalizeMimeType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractStoredWritesSidecar(t *testing.T) {
	ctx := context.Background()
	store := localstore.New(t.TempDir())

	key, _, mimeType, err := store.Save(ctx, "guest:1", "resume.txt", strings.NewReader("Jane Doe\njane@example.com"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	text, extractedKey, err := ExtractStored(ctx, New(), store, key, mimeType, "resume.txt")
	if err != nil {
		t.Fatalf("ExtractStored: %v", err)
	}
	if text != "Jane Doe\njane@example.com" {
		t.Fatalf("unexpected text %q", text)
	}
	if extractedKey != key+".extracted.txt" {
		t.Fatalf("unexpected extracted key %q", extractedKey)
	}

	rc, err := store.Open(ctx, extractedKey)
	if err != nil {
		t.Fatalf("open sidecar: %v", err)
	}
	defer rc.Close()
	saved, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	if string(saved) != text {
		t.Fatalf("sidecar mismatch: %q", saved)
	}
}

type readOnlyStore struct {
	object.ObjectStore
}

func TestExtractStoredSkipsSidecarWithoutKeyedStore(t *testing.T) {
	ctx := context.Background()
	local := localstore.New(t.TempDir())
	key, _, mimeType, err := local.Save(ctx, "guest:1", "resume.txt", strings.NewReader("Jane Doe"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	text, extractedKey, err := ExtractStored(ctx, New(), readOnlyStore{local}, key, mimeType, "resume.txt")
	if err != nil {
		t.Fatalf("ExtractStored: %v", err)
	}
	if text != "Jane Doe" || extractedKey != "" {
		t.Fatalf("unexpected result text=%q key=%q", text, extractedKey)
	}
}
