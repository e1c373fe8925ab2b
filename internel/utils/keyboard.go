package utils

import (
	"bufio"
	"io"
)

// WaitEnterAsync closes the returned channel once a line (or EOF) is read from r.
func WaitEnterAsync(r io.Reader) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		bufio.NewReader(r).ReadBytes('\n')
		close(done)
	}()
	return done
}
