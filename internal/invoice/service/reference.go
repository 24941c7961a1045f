package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

const referencePrefix = "FAC"

// NextReference proposes the next invoice reference for the current
// year, FACyyNNNN. The counter restarts at 0001 every January. The
// proposal is not reserved: two concurrent callers can be handed the
// same value, and only the later explicit write decides who keeps it.
func (s *Service) NextReference(ctx context.Context) (string, error) {
	year := s.clock.Now().Year() % 100
	prefix := fmt.Sprintf("%s%02d", referencePrefix, year)

	last, err := s.repo.LastReference(ctx, s.db, prefix)
	if err != nil {
		s.log.Error("next reference", zap.Error(err))
		return "", err
	}

	seq := 1
	if len(last) > len(prefix) {
		if n, err := strconv.Atoi(last[len(prefix):]); err == nil {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}
