package inbox

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"
)

// String renders the result as the message shown to the user.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Rejected %s: %v", r.Path, r.Err)
	}
	return fmt.Sprintf("Imported %d notes from %s", r.Count, r.Path)
}

type resultSource struct {
	results <-chan Result
	out     chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits inbox results.
func NewSource(results <-chan Result) lifecycle.Source {
	return &resultSource{
		results: results,
		out:     make(chan lifecycle.Event),
	}
}

func (s *resultSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards results until ctx is done or the result channel closes.
func (s *resultSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case r, ok := <-s.results:
				if !ok {
					return nil
				}
				select {
				case s.out <- r:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
