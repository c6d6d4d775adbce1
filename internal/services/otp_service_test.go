package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerateAndVerify(t *testing.T) {
	svc := NewOTPService(NewMemoryOTPStore())
	ctx := context.Background()

	code, err := svc.Generate(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	require.NoError(t, svc.Verify(ctx, "user@example.com", code))
}

func TestOTPVerifyWrongCode(t *testing.T) {
	svc := NewOTPService(NewMemoryOTPStore())
	ctx := context.Background()

	code, err := svc.Generate(ctx, "user@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify(ctx, "user@example.com", "000000"), ErrInvalidOTP)
	// The stored code survives a failed attempt
	require.NoError(t, svc.Verify(ctx, "user@example.com", code))
}

func TestOTPVerifyIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := NewOTPService(NewMemoryOTPStore())
	ctx := context.Background()

	code, err := svc.Generate(ctx, "User@Example.COM")
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, " user@example.com ", code))
}

func TestOTPCannotBeReplayed(t *testing.T) {
	svc := NewOTPService(NewMemoryOTPStore())
	ctx := context.Background()

	code, err := svc.Generate(ctx, "user@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, "user@example.com", code))
	assert.ErrorIs(t, svc.Verify(ctx, "user@example.com", code), ErrOTPNotFound)
}

func TestOTPUnknownEmail(t *testing.T) {
	svc := NewOTPService(NewMemoryOTPStore())
	assert.ErrorIs(t, svc.Verify(context.Background(), "nobody@example.com", "123456"), ErrOTPNotFound)
}

func TestOTPExpiry(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "user@example.com", "123456", -time.Second))

	_, err := store.Get(ctx, "user@example.com")
	assert.ErrorIs(t, err, ErrOTPExpired)

	// An expired entry is gone for good
	_, err = store.Get(ctx, "user@example.com")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPRegenerateReplacesCode(t *testing.T) {
	svc := NewOTPService(NewMemoryOTPStore())
	ctx := context.Background()

	first, err := svc.Generate(ctx, "user@example.com")
	require.NoError(t, err)
	second, err := svc.Generate(ctx, "user@example.com")
	require.NoError(t, err)

	if first != second {
		assert.ErrorIs(t, svc.Verify(ctx, "user@example.com", first), ErrInvalidOTP)
	}
	require.NoError(t, svc.Verify(ctx, "user@example.com", second))
}
