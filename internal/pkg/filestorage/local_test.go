package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestSaveAndDeleteRoundTrip(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	ref, err := storage.SaveFile(uploadHeader(t, "avatar.png", "pixels"), "avatars")
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if !strings.HasPrefix(ref, "/uploads/avatars/") {
		t.Fatalf("reference = %q, want /uploads/avatars/ prefix", ref)
	}

	stored := filepath.Join(base, "avatars", filepath.Base(ref))
	if _, err := os.Stat(stored); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	// Deleting by the returned reference must reach into the subdirectory
	if err := storage.DeleteFile(ref); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete: %v", err)
	}
}

func TestDeleteFileMissingIsNotAnError(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := storage.DeleteFile("/uploads/avatars/gone.png"); err != nil {
		t.Fatalf("DeleteFile on missing file: %v", err)
	}
	if err := storage.DeleteFile(""); err != nil {
		t.Fatalf("DeleteFile on empty reference: %v", err)
	}
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	for _, ref := range []string{"/uploads/../etc/passwd", "/uploads/", ".."} {
		if err := storage.DeleteFile(ref); err == nil {
			t.Fatalf("DeleteFile(%q) accepted an invalid reference", ref)
		}
	}
}
