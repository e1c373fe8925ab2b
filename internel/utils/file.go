package utils

import (
	"errors"
	"fmt"
	"io"
	"os"

	"CommLab/pkg/series"
)

func ReadTxt[T any](filename string) ([]T, error) {

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var data []T
	for {
		var element T
		_, err := fmt.Fscan(file, &element)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		data = append(data, element)
	}

	return data, nil
}

func WriteTxt[V, T any](filename string, data []T, f func(T) V) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return FprintEach(file, data, f)
}

func FprintEach[V, T any](w io.Writer, data []T, f func(T) V) error {
	for _, element := range data {
		if _, err := fmt.Fprintln(w, f(element)); err != nil {
			return fmt.Errorf("failed to write: %w", err)
		}
	}
	return nil
}

// SampleLine formats a sample as "x y", the layout gnuplot and numpy.loadtxt read.
func SampleLine(s series.Sample) string {
	return fmt.Sprintf("%g %g", s.X, s.Y)
}

func WriteSeries(filename string, s series.Series) error {
	return WriteTxt(filename, s, SampleLine)
}

// ReadSeries reads back a file written by WriteSeries.
func ReadSeries(filename string) (series.Series, error) {
	values, err := ReadTxt[float64](filename)
	if err != nil {
		return nil, err
	}
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("odd number of values in %s", filename)
	}
	s := make(series.Series, len(values)/2)
	for i := range s {
		s[i] = series.Sample{X: values[2*i], Y: values[2*i+1]}
	}
	return s, nil
}
