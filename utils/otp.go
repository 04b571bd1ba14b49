package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"glamazon/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GenerateNumericOTP generates a secure random numeric OTP of the given length.
func GenerateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// StoreSignupOTP generates a 6-digit OTP for the given email, stores it in the
// OTP cache with the configured TTL, and returns it for delivery. Any previous
// OTP for the email is replaced.
func StoreSignupOTP(email string) (string, error) {
	otp, err := GenerateNumericOTP(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	ttl := time.Duration(config.AppConfig.OTPTTLMinutes) * time.Minute
	otpKey := fmt.Sprintf("otp:signup:%s", email)

	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return "", fmt.Errorf("OTP cache client not initialized")
	}

	if err := client.Set(ctx, otpKey, otp, ttl).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return "", fmt.Errorf("failed to store signup OTP")
	}
	return otp, nil
}

// VerifySignupOTP compares the provided OTP to the stored one and deletes the
// record on success.
func VerifySignupOTP(email, providedOTP string) error {
	otpKey := fmt.Sprintf("otp:signup:%s", email)
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	storedOTP, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP expired or not found")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("invalid OTP")
	}

	// Delete the OTP after successful verification.
	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}

// DeleteSignupOTP removes a pending OTP, used when mail delivery fails so a
// stale code cannot be replayed later.
func DeleteSignupOTP(email string) {
	otpKey := fmt.Sprintf("otp:signup:%s", email)
	if err := GetOTPCacheClient().Del(context.Background(), otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete pending OTP", zap.Error(err))
	}
}
