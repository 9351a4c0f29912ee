package romload

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlainFileReturnsBytesAsIs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.gb")
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d bytes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d: expected 0x%02X, got 0x%02X", i, want[i], got[i])
		}
	}
}

func TestLoadExtractsFirstZipEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.zip")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	entry, err := zw.Create("game.gb")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xAA, 0xBB, 0xCC}
	if _, err := entry.Write(want); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d bytes from zip entry, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d: expected 0x%02X, got 0x%02X", i, want[i], got[i])
		}
	}
}

func TestLoadEmptyZipIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.zip")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := Load(path); err == nil {
		t.Error("expected an error loading an empty zip archive")
	}
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.gb")); err == nil {
		t.Error("expected an error for a nonexistent file")
	}
}

func TestLoadBootROMValidatesLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boot.bin")
	if err := os.WriteFile(path, make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadBootROM(path); err == nil {
		t.Error("expected an error for a boot rom that isn't exactly 256 bytes")
	}
}

func TestLoadBootROMAcceptsExactly256Bytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boot.bin")
	want := make([]byte, 256)
	want[0] = 0x31
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadBootROM(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 0x31 {
		t.Errorf("expected first byte 0x31, got 0x%02X", got[0])
	}
}
