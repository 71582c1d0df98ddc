package ports

import (
	"context"
	"time"

	"github.com/renato0307/freshcart/internal/domain"
)

// OTPGateway delivers and checks one-time passwords
type OTPGateway interface {
	SendOTP(ctx context.Context, phoneNumber string) error

	// VerifyOTP reports whether code matches the last OTP sent to phoneNumber
	VerifyOTP(ctx context.Context, phoneNumber, code string) (bool, error)
}

// GeocodeCache stores reverse-geocoding results.
// Get returns found=false on a miss.
type GeocodeCache interface {
	Get(ctx context.Context, key string) (candidates []domain.AddressCandidate, found bool, err error)
	Set(ctx context.Context, key string, candidates []domain.AddressCandidate) error
}

// ServiceabilityChecker decides whether delivery is offered at a point
type ServiceabilityChecker interface {
	IsServiceable(ctx context.Context, coords domain.Coordinates) bool
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}
