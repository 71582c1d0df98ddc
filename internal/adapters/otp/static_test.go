package otp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/domain"
)

func TestStaticGateway_SendAndVerify(t *testing.T) {
	g := NewStaticGateway(0)
	ctx := context.Background()

	require.NoError(t, g.SendOTP(ctx, "9876543210"))
	assert.Equal(t, 1, g.SentCount("9876543210"))

	ok, err := g.VerifyOTP(ctx, "9876543210", DemoCode)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.VerifyOTP(ctx, "9876543210", "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStaticGateway_VerifyWithoutSend(t *testing.T) {
	g := NewStaticGateway(0)

	_, err := g.VerifyOTP(context.Background(), "9876543210", DemoCode)

	assert.ErrorIs(t, err, domain.ErrNoOTPRequested)
}

func TestStaticGateway_LatencyHonoursContext(t *testing.T) {
	g := NewStaticGateway(time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := g.SendOTP(ctx, "9876543210")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, g.SentCount("9876543210"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "******3210", maskPhone("9876543210"))
	assert.Equal(t, "123", maskPhone("123"))
}
