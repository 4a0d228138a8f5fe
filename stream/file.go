package stream

import "os"

// File wraps an open file into a sized byte stream. The file is
// borrowed: closing it remains the caller's job.
type File struct {
	*os.File
}

// NewFile returns a file stream over f.
func NewFile(f *os.File) *File {
	return &File{File: f}
}

// Size returns the file length in bytes.
func (f *File) Size() (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
