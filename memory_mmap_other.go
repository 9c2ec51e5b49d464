//go:build !unix

package convref

import "os"

// mapFile falls back to reading the whole file on platforms without mmap.
func mapFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Buffer{path: path, data: data}, nil
}
