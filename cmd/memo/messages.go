package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/memo/pkg/core"
)

const previewLength = 100

// describe turns domain errors into the messages shown to the user.
func describe(err error) error {
	switch {
	case errors.Is(err, core.ErrValidation):
		return fmt.Errorf("please enter the note content: %w", err)
	case errors.Is(err, core.ErrEmptyCollection):
		return errors.New("no notes to export")
	case errors.Is(err, core.ErrSchema), errors.Is(err, core.ErrParse):
		return fmt.Errorf("invalid file format: %w", err)
	default:
		return err
	}
}

// formatDate renders t relative to now: "Today 9:05", "Yesterday 18:30" or "2024/01/31".
func formatDate(t, now time.Time) string {
	t = t.In(now.Location())
	y, m, d := t.Date()

	ny, nm, nd := now.Date()
	if y == ny && m == nm && d == nd {
		return fmt.Sprintf("Today %d:%02d", t.Hour(), t.Minute())
	}

	yy, ym, yd := now.AddDate(0, 0, -1).Date()
	if y == yy && m == ym && d == yd {
		return fmt.Sprintf("Yesterday %d:%02d", t.Hour(), t.Minute())
	}

	return fmt.Sprintf("%d/%02d/%02d", y, int(m), d)
}

func pinMessage(pinned bool) string {
	if pinned {
		return "Note pinned"
	}
	return "Note unpinned"
}

func themeMessage(dark bool) string {
	if dark {
		return "Switched to dark mode"
	}
	return "Switched to light mode"
}
