package quote_duration

import (
	"context"

	findSlots "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_available_slots"
)

type DurationQuoter interface {
	QuoteDuration(ctx context.Context, serviceIDs []string) (*findSlots.DurationQuote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
