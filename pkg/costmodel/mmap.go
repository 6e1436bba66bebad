package costmodel

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// modelData holds the raw bytes of a model file, memory-mapped when the
// platform allows it.
type modelData struct {
	data   []byte
	mapped bool
}

// readModelFile maps the model file read-only, falling back to a plain read
// when mapping fails. The caller must Close the result; parsed networks copy
// the weights out, so the mapping never outlives the load.
func readModelFile(path string) (*modelData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat model file: %w", err)
	}
	if st.Size() == 0 {
		return nil, ErrTruncatedModel
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err == nil {
		return &modelData{data: data, mapped: true}, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	return &modelData{data: data}, nil
}

// Close releases the mapping, if any.
func (d *modelData) Close() error {
	if !d.mapped {
		return nil
	}
	d.mapped = false
	return unix.Munmap(d.data)
}
