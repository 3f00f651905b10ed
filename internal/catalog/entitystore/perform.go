package entitystore

import (
	"context"

	"go.uber.org/zap"
)

// Perform runs op as a mutation of s. On success the current page is
// refetched and successText is shown. On failure the translated message is
// shown and returned as an *apperror.ReportedError.
func Perform[T, R any](
	ctx context.Context,
	s *Store[T],
	successText string,
	op func(ctx context.Context) (R, error),
) (R, error) {
	s.beginLoading()
	defer s.endLoading()

	res, err := op(ctx)
	if err != nil {
		var zero R
		return zero, s.Report(err)
	}

	if err := s.FetchItems(ctx, nil); err != nil {
		s.logger.Debug("refetch after mutation failed", zap.Error(err))
	}

	s.notifier.Success(successText)

	return res, nil
}

// Optimistic applies a local change, runs write and reverts the change when
// write fails.
func Optimistic(ctx context.Context, apply, revert func(), write func(ctx context.Context) error) error {
	apply()

	if err := write(ctx); err != nil {
		revert()
		return err
	}

	return nil
}
