package ringtool

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestPackUnpackRoundtrip(t *testing.T) {
	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "backups"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"object.builder":           "builder-state",
		"object.ring.gz":           "ring-bytes",
		"backups/1.object.builder": "old-builder-state",
		"account.builder":          "account-state",
		"container.builder":        "container-state",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(src, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	data, err := Pack(src)
	if err != nil {
		t.Fatalf("pack error: %v", err)
	}

	dst := t.TempDir()
	if err := Unpack(data, dst); err != nil {
		t.Fatalf("unpack error: %v", err)
	}

	for name, content := range files {
		got, err := os.ReadFile(filepath.Join(dst, name))
		if err != nil {
			t.Fatalf("missing %s after unpack: %v", name, err)
		}
		if string(got) != content {
			t.Errorf("%s: got %q, want %q", name, got, content)
		}
	}
}

func TestPack_EmptyDir(t *testing.T) {
	data, err := Pack(t.TempDir())
	if err != nil {
		t.Fatalf("pack error: %v", err)
	}
	if err := Unpack(data, t.TempDir()); err != nil {
		t.Fatalf("unpack error: %v", err)
	}
}

func TestUnpack_RejectsTraversal(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	content := []byte("evil")
	if err := tw.WriteHeader(&tar.Header{
		Name:     "../escape",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len(content)),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	if err := Unpack(buf.Bytes(), t.TempDir()); err == nil {
		t.Fatal("expected error for path traversal entry")
	}
}

func TestUnpack_BadData(t *testing.T) {
	if err := Unpack([]byte("not a tarball"), t.TempDir()); err == nil {
		t.Fatal("expected error for invalid archive")
	}
}
