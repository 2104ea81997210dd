package audit

import (
	"context"
	"errors"
)

// MultiWriter writes every event to all of its writers, even if some fail.
type MultiWriter struct {
	writers []Writer
}

func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (m *MultiWriter) Write(ctx context.Context, e Event) error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Write(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
