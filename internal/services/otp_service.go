package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpTTL = 10 * time.Minute

// OTPStore keeps one pending code per email with a TTL.
type OTPStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// RedisOTPStore keeps codes in Redis so they survive restarts and are shared
// across instances. Expiry is handled by the key TTL.
type RedisOTPStore struct {
	Client *redis.Client
}

func NewRedisOTPStore(addr, password string) *RedisOTPStore {
	return &RedisOTPStore{
		Client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
	}
}

func otpKey(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}

func (s *RedisOTPStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.Client.Set(ctx, otpKey(email), code, ttl).Err()
}

func (s *RedisOTPStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.Client.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrOTPNotFound
	}
	return code, err
}

func (s *RedisOTPStore) Delete(ctx context.Context, email string) error {
	return s.Client.Del(ctx, otpKey(email)).Err()
}

// MemoryOTPStore is the single-process fallback used when Redis is not
// configured, and in tests.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]memoryOTP
}

type memoryOTP struct {
	code      string
	expiresAt time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{entries: make(map[string]memoryOTP)}
}

func (s *MemoryOTPStore) Put(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[otpKey(email)] = memoryOTP{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Get(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[otpKey(email)]
	if !ok {
		return "", ErrOTPNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, otpKey(email))
		return "", ErrOTPExpired
	}
	return entry.code, nil
}

func (s *MemoryOTPStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, otpKey(email))
	return nil
}

// OTPService issues and verifies the password-reset codes.
type OTPService struct {
	Store OTPStore
}

func NewOTPService(store OTPStore) *OTPService {
	return &OTPService{Store: store}
}

// Generate creates a 6-digit code valid for 10 minutes.
func (s *OTPService) Generate(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)
	if err := s.Store.Put(ctx, email, code, otpTTL); err != nil {
		return "", err
	}
	return code, nil
}

// Verify consumes the code on success so it cannot be replayed.
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	stored, err := s.Store.Get(ctx, email)
	if err != nil {
		return err
	}
	if stored != code {
		return ErrInvalidOTP
	}
	return s.Store.Delete(ctx, email)
}
