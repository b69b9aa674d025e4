package orbitals

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SavePointsRaw writes pts as: int32 count, then count*3 float64 (x,y,z), little-endian.
func SavePointsRaw(path string, pts []Point) error {
	if len(pts) > MaxCount {
		return fmt.Errorf("too many points: %d > %d", len(pts), MaxCount)
	}
	return writeFile(path, func(w *bufio.Writer) error {
		if err := binary.Write(w, binary.LittleEndian, int32(len(pts))); err != nil {
			return err
		}
		if len(pts) == 0 {
			return nil
		}
		buf := make([]Real, 0, len(pts)*3)
		for _, p := range pts {
			buf = append(buf, p.X, p.Y, p.Z)
		}
		return binary.Write(w, binary.LittleEndian, buf)
	})
}

// LoadPointsRaw reads a file written by SavePointsRaw.
func LoadPointsRaw(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if n < 0 || n > MaxCount {
		return nil, fmt.Errorf("bad point count %d", n)
	}
	buf := make([]Real, int(n)*3)
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after %d points", n)
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: buf[3*i], Y: buf[3*i+1], Z: buf[3*i+2]}
	}
	return pts, nil
}

// SavePointsXYZ writes one "x y z" line per point.
func SavePointsXYZ(path string, pts []Point) error {
	return writeFile(path, func(w *bufio.Writer) error {
		for _, p := range pts {
			if _, err := fmt.Fprintf(w, "%.6f %.6f %.6f\n", p.X, p.Y, p.Z); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeFile(path string, body func(*bufio.Writer) error) error {
	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := body(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
