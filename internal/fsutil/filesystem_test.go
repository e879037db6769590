package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem(t *testing.T) {
	fsys := OSFileSystem{}
	dir := t.TempDir()

	sub := filepath.Join(dir, "session")
	if err := fsys.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path := filepath.Join(sub, "a.bja")
	if err := fsys.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !fsys.Exists(path) {
		t.Error("Exists = false after WriteFile")
	}

	data, err := fsys.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}

	f, err := fsys.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	b, _ := io.ReadAll(f)
	if string(b) != "hello" {
		t.Errorf("Open read %q", b)
	}

	info, err := fsys.Stat(sub)
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(dir) = %v, %v", info, err)
	}

	fsys.WriteFile(filepath.Join(sub, "b.bja"), nil, 0o644)
	fsys.WriteFile(filepath.Join(sub, "b.bjax"), nil, 0o644)
	got, err := fsys.Glob(filepath.Join(sub, "*.bja"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(got) != 2 || filepath.Base(got[0]) != "a.bja" || filepath.Base(got[1]) != "b.bja" {
		t.Errorf("Glob = %v", got)
	}
}

func TestMemoryFileSystem_ReadWrite(t *testing.T) {
	m := NewMemoryFileSystem()

	if m.Exists("/s/a.bmr") {
		t.Fatal("empty filesystem reports file")
	}
	if _, err := m.ReadFile("/s/a.bmr"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile missing: %v", err)
	}
	if _, err := m.Open("/s/a.bmr"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open missing: %v", err)
	}

	src := []byte("1,2,3")
	if err := m.WriteFile("/s/a.bmr", src, 0o600); err != nil {
		t.Fatal(err)
	}
	src[0] = 'x'

	data, err := m.ReadFile("/s/../s/a.bmr")
	if err != nil || string(data) != "1,2,3" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
	if !m.Exists("/s") {
		t.Error("parent dir not recorded")
	}

	info, err := m.Stat("/s/a.bmr")
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 5 || info.Mode() != 0o600 || info.IsDir() || info.Name() != "a.bmr" {
		t.Errorf("Stat = %+v", info)
	}

	f, err := m.Open("/s/a.bmr")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(f)
	if string(b) != "1,2,3" {
		t.Errorf("Open read %q", b)
	}
	if st, _ := f.Stat(); st.Size() != 5 {
		t.Errorf("file Stat size %d", st.Size())
	}
	f.Close()
}

func TestMemoryFileSystem_MkdirAll(t *testing.T) {
	m := NewMemoryFileSystem()
	if err := m.MkdirAll("/a/b/c", os.ModePerm); err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{"/a", "/a/b", "/a/b/c"} {
		info, err := m.Stat(d)
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(%s) = %v, %v", d, info, err)
		}
	}
}

func TestMemoryFileSystem_Glob(t *testing.T) {
	m := NewMemoryFileSystem()
	for _, name := range []string{
		"/s/z.btr", "/s/a.btr", "/s/a_body.btr2d", "/s/nested/x.btr", "/other/b.btr",
	} {
		m.WriteFile(name, nil, 0o644)
	}

	got, err := m.Glob("/s/*.btr")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/s/a.btr", "/s/z.btr"}
	if len(got) != len(want) {
		t.Fatalf("Glob = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Glob[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if _, err := m.Glob("/s/[*.btr"); !errors.Is(err, filepath.ErrBadPattern) {
		t.Errorf("bad pattern err = %v", err)
	}
}
