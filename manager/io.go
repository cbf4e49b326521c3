package manager

import (
	"context"
	"os"
)

// readFileContext reads path on a separate goroutine so a caller's
// context cancellation is observed even while the read blocks, per the
// Go idiom of accepting a Context on the one operation in this package
// that actually blocks on I/O.
func readFileContext(ctx context.Context, path string) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.data, r.err
	}
}
