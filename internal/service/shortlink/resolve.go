package shortlink

import (
	"context"
	"fmt"
	"log/slog"
)

// Resolve maps a code to its target URL for a redirect and counts the
// click. The cache short-circuits the store read; the click counter is
// always bumped against the store so counts survive cache hits.
func (s *Service) Resolve(ctx context.Context, code string) (string, error) {
	if s.cache != nil {
		if target, ok := s.cache.GetTarget(ctx, code); ok {
			if err := s.links.IncrementClicks(ctx, code); err != nil {
				// The cached entry outlived the link; drop it.
				s.invalidate(ctx, code)
				return "", fmt.Errorf("shortlink.Resolve: %w", err)
			}
			return target, nil
		}
	}

	l, err := s.links.GetByCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("shortlink.Resolve: %w", err)
	}

	if s.cache != nil {
		s.cache.SetTarget(ctx, code, l.TargetURL)
	}

	if err := s.links.IncrementClicks(ctx, code); err != nil {
		return "", fmt.Errorf("shortlink.Resolve: %w", err)
	}

	s.log.DebugContext(ctx, "short link resolved",
		slog.String("code", code),
	)

	return l.TargetURL, nil
}
