package notebook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/memo/pkg/transfer"
)

// ImportResult is delivered once per ImportAsync call.
type ImportResult struct {
	Count int
	Err   error
}

var errImportAborted = errors.New("import aborted")

// Import parses raw and merges the notes ahead of the existing collection,
// each under a fresh id. Parse and schema failures leave the collection as is.
func (s *Service) Import(ctx context.Context, raw []byte, format transfer.Format) (int, error) {
	imported, err := transfer.Parse(raw, format)
	if err != nil {
		s.logger.Warn("import rejected", "format", format, "error", err)
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	merged := transfer.Merge(s.notes, imported, func() string { return s.importID(now) })
	if err := s.commit(ctx, merged); err != nil {
		return 0, err
	}
	s.imports++
	s.logger.Info("notes imported", "count", len(imported), "total", len(merged))
	return len(imported), nil
}

// ImportAsync reads r in the background and imports its content. The returned
// channel yields exactly one result and is then closed. Cancelling ctx stops
// the read; once reading has finished the merge always runs to completion.
// Concurrent imports are merged in the order they finish reading.
func (s *Service) ImportAsync(ctx context.Context, r io.Reader, format transfer.Format) <-chan ImportResult {
	results := make(chan ImportResult, 1)

	if err := ctx.Err(); err != nil {
		results <- ImportResult{Err: fmt.Errorf("import cancelled: %w", err)}
		close(results)
		return results
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		delivered := false
		defer func() {
			if !delivered {
				results <- ImportResult{Err: errImportAborted}
			}
			close(results)
		}()

		raw, err := readAll(ctx, r)
		if err != nil {
			results <- ImportResult{Err: err}
			delivered = true
			return err
		}

		var n int
		err = lifecycle.DoDetached(ctx, func(ctx context.Context) error {
			var err error
			n, err = s.Import(ctx, raw, format)
			return err
		})
		results <- ImportResult{Count: n, Err: err}
		delivered = true
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("import task failed", "error", err)
	}))

	return results
}

// readAll reads r until EOF, checking ctx between chunks.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import cancelled: %w", err)
		}
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read import: %w", err)
		}
	}
}
