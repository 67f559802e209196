package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// consumeCodeScript compares the stored code with the submitted one and
// deletes the key on a match, in a single atomic step. Returns 1 on a
// match, 0 otherwise. The Redis Go client switches to EVALSHA after the
// first call, so the script body is only sent once.
var consumeCodeScript = redis.NewScript(`
	local stored = redis.call('GET', KEYS[1])
	if stored == ARGV[1] then
		redis.call('DEL', KEYS[1])
		return 1
	end
	return 0
`)

const (
	// Redis key prefix for patient verification codes
	verificationKeyPrefix = "verification:patient:"

	// Codes expire after this duration
	verificationCodeTTL = 5 * time.Minute
)

// VerificationCodeService stores short-lived verification codes in Redis.
// A code can be consumed at most once.
type VerificationCodeService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewVerificationCodeService(redisClient *redis.Client, log *logrus.Logger) *VerificationCodeService {
	return &VerificationCodeService{
		redisClient: redisClient,
		log:         log,
	}
}

// GenerateCode produces a 6-digit numeric code using crypto/rand.
func (s *VerificationCodeService) GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Store saves the code for the given patient, replacing any earlier
// unconsumed code and resetting the TTL.
func (s *VerificationCodeService) Store(ctx context.Context, patientID uint, code string) error {
	key := fmt.Sprintf("%s%d", verificationKeyPrefix, patientID)
	if err := s.redisClient.Set(ctx, key, code, verificationCodeTTL).Err(); err != nil {
		s.log.Errorf("Failed to store verification code for patient %d: %+v", patientID, err)
		return fmt.Errorf("store verification code: %w", err)
	}
	return nil
}

// Consume checks the submitted code and invalidates it on a match.
// A wrong or expired code returns false without touching the stored one.
func (s *VerificationCodeService) Consume(ctx context.Context, patientID uint, code string) (bool, error) {
	key := fmt.Sprintf("%s%d", verificationKeyPrefix, patientID)
	result, err := consumeCodeScript.Run(ctx, s.redisClient, []string{key}, code).Int()
	if err != nil {
		s.log.Errorf("Failed to consume verification code for patient %d: %+v", patientID, err)
		return false, fmt.Errorf("consume verification code: %w", err)
	}
	return result == 1, nil
}
