package utils

import (
	"encoding/binary"
	"fmt"
	"os"
)

// ReadBinary loads a little-endian dump of fixed-size T values, such as the
// float64 samples or int32 PCM written by `-f bin` and `-f pcm`.
func ReadBinary[T any](filename string) ([]T, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open samples: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat samples: %w", err)
	}

	var zero T
	size := binary.Size(zero)
	if size <= 0 {
		return nil, fmt.Errorf("%T has no fixed binary size", zero)
	}
	if info.Size()%int64(size) != 0 {
		return nil, fmt.Errorf("%s: %d bytes is not a whole number of %d-byte samples", filename, info.Size(), size)
	}

	data := make([]T, int(info.Size())/size)
	if err := binary.Read(file, binary.LittleEndian, &data); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	return data, nil
}

// WriteBinary dumps data little-endian to filename, replacing it.
func WriteBinary[T any](filename string, data []T) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create samples file: %w", err)
	}
	defer file.Close()

	if err := binary.Write(file, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}
