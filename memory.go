package convref

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Buffer is a loaded file. Mapped buffers must be closed.
type Buffer struct {
	path    string
	data    []byte
	release func() error
}

// Bytes returns the file contents.
func (b *Buffer) Bytes() []byte { return b.data }

// Path returns the file the buffer was loaded from.
func (b *Buffer) Path() string { return b.path }

// Close releases the buffer. It is safe to call more than once.
func (b *Buffer) Close() error {
	if b.release == nil {
		return nil
	}
	err := b.release()
	b.release = nil
	b.data = nil
	return err
}

// LoadFile reads the whole of path into memory. Files ending in ".zst" are
// zstd-decompressed; other files are memory-mapped read-only when mmap is
// set and the platform supports it. The result holds at least minSize bytes.
func LoadFile(path string, minSize int, mmap bool) (*Buffer, error) {
	var (
		buf *Buffer
		err error
	)
	switch {
	case strings.HasSuffix(path, ".zst"):
		buf, err = loadZstd(path)
	case mmap:
		buf, err = mapFile(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		buf = &Buffer{path: path, data: data}
	}
	if err != nil {
		return nil, NewIOError("LoadFile", path, err)
	}
	if n := len(buf.data); n < minSize {
		buf.Close()
		return nil, NewIOError("LoadFile", path,
			fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, minSize, n))
	}
	return buf, nil
}

func loadZstd(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return &Buffer{path: path, data: data}, nil
}

// Loader loads the buffers of one run and releases them together.
type Loader struct {
	Mmap    bool
	buffers []*Buffer
}

// Bytes loads path and keeps the buffer until Close.
func (l *Loader) Bytes(path string, minSize int) ([]byte, error) {
	buf, err := LoadFile(path, minSize, l.Mmap)
	if err != nil {
		return nil, err
	}
	l.buffers = append(l.buffers, buf)
	return buf.Bytes(), nil
}

// Matrix loads a rows x cols row-major matrix from path.
func (l *Loader) Matrix(path string, rows, cols int) (Matrix, error) {
	size, err := area("Loader.Matrix", rows, cols)
	if err != nil {
		return Matrix{}, err
	}
	data, err := l.Bytes(path, size)
	if err != nil {
		return Matrix{}, err
	}
	return NewMatrix(rows, cols, data)
}

// Kernel loads a rows x rows kernel from path. The encoding is checked
// before the file is touched.
func (l *Loader) Kernel(path string, rows int, enc Encoding) (Kernel, error) {
	if err := enc.Validate(); err != nil {
		return Kernel{}, err
	}
	size, err := area("Loader.Kernel", rows, rows)
	if err != nil {
		return Kernel{}, err
	}
	data, err := l.Bytes(path, size)
	if err != nil {
		return Kernel{}, err
	}
	return NewKernel(rows, data, enc)
}

// Close releases every buffer loaded so far.
func (l *Loader) Close() error {
	var errs []error
	for _, b := range l.buffers {
		if err := b.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", b.Path(), err))
		}
	}
	l.buffers = nil
	return errors.Join(errs...)
}
