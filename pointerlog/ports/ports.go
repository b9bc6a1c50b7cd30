package ports

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ReadFile streams the lines of r. The channel is closed once r is exhausted
// or ctx is done, whichever comes first.
func ReadFile(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(r)
		for ctx.Err() == nil && scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			slog.Error("Failed to read input", "error", err)
		}
	}()

	return ch
}

// Open returns a reader for path, or stdin when path is empty or "-".
func Open(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	closer := func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close file", "path", path, "error", err)
		}
	}

	return file, closer, nil
}
