// Package safefile reads configuration and pattern files defensively.
package safefile

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotRegularFile is returned for FIFOs, devices, sockets and directories,
// including when a symlink resolves to one.
var ErrNotRegularFile = errors.New("not a regular file")

// ErrEmpty is returned by ReadLimited for zero-length files.
var ErrEmpty = errors.New("file is empty")

// TooLargeError reports a file that exceeds the caller's size limit.
type TooLargeError struct {
	Size int64
	Max  int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file too large: %d bytes (max %d)", e.Size, e.Max)
}

// OpenRegular opens path only if it resolves to a regular file. Symlinks are
// followed, so dotfile-managed configs work.
//
// The target is checked before opening so a FIFO cannot block the open, and
// the opened descriptor is checked again in case the file was swapped between
// the two calls. The caller must close the returned file.
func OpenRegular(path string) (*os.File, os.FileInfo, error) {
	targetInfo, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if !targetInfo.Mode().IsRegular() {
		return nil, nil, ErrNotRegularFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, ErrNotRegularFile
	}

	return f, info, nil
}

// ReadLimited reads a whole regular file of at most max bytes.
// Errors never contain path: os.PathError values are reduced to their
// operation and cause.
func ReadLimited(path string, max int64) ([]byte, error) {
	f, info, err := OpenRegular(path)
	if err != nil {
		return nil, SanitizePathError(err)
	}
	defer f.Close()

	if info.Size() == 0 {
		return nil, ErrEmpty
	}
	if info.Size() > max {
		return nil, &TooLargeError{Size: info.Size(), Max: max}
	}

	// Read one byte past the limit to catch files growing after Stat.
	data, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, SanitizePathError(err)
	}
	if int64(len(data)) > max {
		return nil, &TooLargeError{Size: int64(len(data)), Max: max}
	}
	return data, nil
}

// SanitizePathError strips the path from an *os.PathError so error messages
// shown to chat users do not leak file system layout.
func SanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}
