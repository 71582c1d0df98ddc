package otp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// DemoCode is the only code the static gateway accepts
const DemoCode = "123456"

// StaticGateway is an OTP gateway that never sends a real message.
// Every number receives DemoCode after a simulated network delay.
type StaticGateway struct {
	code    string
	latency time.Duration
	mu      sync.Mutex
	sent    map[string]int
}

var _ ports.OTPGateway = (*StaticGateway)(nil)

// NewStaticGateway creates a gateway that answers after latency
func NewStaticGateway(latency time.Duration) *StaticGateway {
	return &StaticGateway{
		code:    DemoCode,
		latency: latency,
		sent:    make(map[string]int),
	}
}

// SendOTP implements ports.OTPGateway
func (g *StaticGateway) SendOTP(ctx context.Context, phoneNumber string) error {
	if err := g.wait(ctx); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	g.mu.Lock()
	g.sent[phoneNumber]++
	count := g.sent[phoneNumber]
	g.mu.Unlock()

	logging.Logger.Info("OTP sent", "phone", maskPhone(phoneNumber), "count", count)
	return nil
}

// VerifyOTP implements ports.OTPGateway
func (g *StaticGateway) VerifyOTP(ctx context.Context, phoneNumber, code string) (bool, error) {
	if err := g.wait(ctx); err != nil {
		return false, fmt.Errorf("failed to verify OTP: %w", err)
	}

	g.mu.Lock()
	_, requested := g.sent[phoneNumber]
	g.mu.Unlock()

	if !requested {
		return false, domain.ErrNoOTPRequested
	}
	return code == g.code, nil
}

// SentCount returns how many codes were sent to phoneNumber
func (g *StaticGateway) SentCount(phoneNumber string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sent[phoneNumber]
}

func (g *StaticGateway) wait(ctx context.Context) error {
	if g.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// maskPhone keeps the last four digits
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	masked := make([]byte, len(phone))
	for i := range phone {
		if i < len(phone)-4 {
			masked[i] = '*'
		} else {
			masked[i] = phone[i]
		}
	}
	return string(masked)
}
