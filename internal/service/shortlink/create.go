package shortlink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
	"github.com/snaplinkhq/snaplink-backend/internal/observe"
)

// Create shortens a target URL. Anonymous callers may create links; such
// links have no owner until somebody claims them.
//
// Allocation is check-then-insert: a candidate code is probed with a read
// and, if free, inserted. The store's uniqueness guarantee is the actual
// arbiter; an insert-time unique violation means another writer won the
// code between check and insert and is retried like a probe collision.
// The attempt budget caps the loop; running out yields
// domain.ErrAllocationExhausted without touching the store again.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.ShortLink, error) {
	p := principalFromCtx(ctx)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	var owner *uuid.UUID
	if !p.IsAnonymous() {
		id := p.UserID
		owner = &id
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return nil, fmt.Errorf("shortlink.Create: %w", err)
		}

		// Probe first: cheaper than a failed insert in the common case.
		_, err = s.links.GetByCode(ctx, code)
		if err == nil {
			observe.CodeCollisions.WithLabelValues("probe").Inc()
			s.log.InfoContext(ctx, "short code collision",
				slog.String("phase", "probe"),
				slog.Int("attempt", attempt),
			)
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("shortlink.Create: %w", err)
		}

		now := time.Now().UTC()
		l := &domain.ShortLink{
			ID:          uuid.New(),
			Code:        code,
			TargetURL:   in.TargetURL,
			OwnerUserID: owner,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		created, err := s.links.Create(ctx, l)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				// Lost the race for this code after the probe.
				observe.CodeCollisions.WithLabelValues("insert").Inc()
				s.log.InfoContext(ctx, "short code collision",
					slog.String("phase", "insert"),
					slog.Int("attempt", attempt),
				)
				continue
			}
			return nil, fmt.Errorf("shortlink.Create: %w", err)
		}

		s.log.InfoContext(ctx, "short link created",
			slog.String("link_id", created.ID.String()),
			slog.String("code", created.Code),
			slog.Int("attempt", attempt),
		)

		return created, nil
	}

	observe.AllocationExhausted.Inc()
	s.log.ErrorContext(ctx, "short code allocation exhausted",
		slog.Int("max_attempts", s.maxAttempts),
	)

	return nil, domain.ErrAllocationExhausted
}
