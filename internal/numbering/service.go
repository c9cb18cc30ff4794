// Package numbering issues unique, human-readable document numbers for
// purchase orders and proforma invoices.
package numbering

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Kind selects which counter and prefix a number is drawn from.
type Kind string

const (
	KindPO Kind = "PO"
	KindPI Kind = "PI"
)

// IssuedNumber is the result of a single number issue.
type IssuedNumber struct {
	Number string
	Raw    int64
	Date   string
}

// CounterStore provides the atomic counter bump and the configured
// prefixes. Implemented by the settings repository.
type CounterStore interface {
	// NextNumber atomically increments the counter for kind and returns
	// the value issued together with the configured prefix.
	NextNumber(ctx context.Context, kind Kind) (raw int64, prefix string, err error)
}

// Service formats issued numbers. Safe for concurrent use; all shared
// state lives in the store.
type Service struct {
	store  CounterStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a numbering service.
func NewService(store CounterStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Issue draws the next number for kind. Format:
// <prefix>/<DDMMYY>/<zero-padded sequence>, date in UTC. Numbers are
// monotonically increasing and never reissued; a store failure yields an
// error and no number.
func (s *Service) Issue(ctx context.Context, kind Kind) (IssuedNumber, error) {
	raw, prefix, err := s.store.NextNumber(ctx, kind)
	if err != nil {
		return IssuedNumber{}, fmt.Errorf("numbering: next %s number: %w", kind, err)
	}
	date := s.now().UTC().Format("020106")
	number := fmt.Sprintf("%s/%s/%04d", strings.TrimRight(prefix, "/"), date, raw)
	s.logger.Info("issued document number",
		slog.String("kind", string(kind)),
		slog.String("number", number),
		slog.Int64("raw", raw))
	return IssuedNumber{Number: number, Raw: raw, Date: date}, nil
}
