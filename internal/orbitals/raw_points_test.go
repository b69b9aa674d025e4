package orbitals

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavePointsRawRoundTrip(t *testing.T) {
	pts := []Point{{X: 1, Y: 2, Z: 3}, {X: -0.5, Y: 0, Z: 1e-9}, {X: 40, Y: -40, Z: 0.25}}
	path := filepath.Join(t.TempDir(), "sub", "pts.raw")
	if err := SavePointsRaw(path, pts); err != nil {
		t.Fatalf("SavePointsRaw error: %v", err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() != 4+int64(len(pts))*3*8 {
		t.Fatalf("file size %d", st.Size())
	}
	got, err := LoadPointsRaw(path)
	if err != nil {
		t.Fatalf("LoadPointsRaw error: %v", err)
	}
	if len(got) != len(pts) {
		t.Fatalf("len %d, want %d", len(got), len(pts))
	}
	for i := range pts {
		if got[i] != pts[i] {
			t.Fatalf("point #%d: %v vs %v", i, got[i], pts[i])
		}
	}
}

func TestSavePointsRawEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.raw")
	if err := SavePointsRaw(path, nil); err != nil {
		t.Fatal(err)
	}
	got, err := LoadPointsRaw(path)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestLoadPointsRawRejectsTrailingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pts.raw")
	if err := SavePointsRaw(path, []Point{{X: 1}}); err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.Write([]byte{0})
	_ = f.Close()
	if _, err := LoadPointsRaw(path); err == nil || !strings.Contains(err.Error(), "trailing") {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestSavePointsXYZ(t *testing.T) {
	pts := NewSeededSampler(1).Sample("2px", 50)
	path := filepath.Join(t.TempDir(), "pts.xyz")
	if err := SavePointsXYZ(path, pts); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	lines := 0
	for sc.Scan() {
		if n := len(strings.Fields(sc.Text())); n != 3 {
			t.Fatalf("line %d has %d fields", lines, n)
		}
		lines++
	}
	if lines != len(pts) {
		t.Fatalf("lines %d, points %d", lines, len(pts))
	}
}

func TestSavePointsReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	pts := make([]Point, 10000)
	if err := SavePointsRaw("/dev/full", pts); err == nil {
		t.Fatal("expected ENOSPC from /dev/full")
	}
	if err := SavePointsXYZ("/dev/full", pts); err == nil {
		t.Fatal("expected ENOSPC from /dev/full")
	}
}
