package utils

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := Retry(cfg, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Errorf("expected success, got %v", err)
		}
		if attempts != 3 {
			t.Errorf("expected 3 attempts, got %d", attempts)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		attempts := 0
		wantErr := errors.New("persistent")
		err := Retry(cfg, func() error {
			attempts++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
		if attempts != cfg.MaxAttempts {
			t.Errorf("expected %d attempts, got %d", cfg.MaxAttempts, attempts)
		}
	})

	t.Run("skip errors are not retried", func(t *testing.T) {
		attempts := 0
		sentinel := errors.New("declined")
		err := Retry(cfg, func() error {
			attempts++
			return fmt.Errorf("request failed: %w", sentinel)
		}, sentinel)
		if !errors.Is(err, sentinel) {
			t.Errorf("expected %v, got %v", sentinel, err)
		}
		if attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", attempts)
		}
	})
}
