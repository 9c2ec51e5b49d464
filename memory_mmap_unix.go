//go:build unix

package convref

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps path read-only into memory.
func mapFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		return &Buffer{path: path}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		path:    path,
		data:    data,
		release: func() error { return unix.Munmap(data) },
	}, nil
}
