package domain

import (
	"errors"
	"testing"
)

func TestIsValidLikeTarget(t *testing.T) {
	tests := []struct {
		target LikeTarget
		valid  bool
	}{
		{LikeTargetVideo, true},
		{LikeTargetComment, true},
		{LikeTargetTweet, true},
		{LikeTarget("playlist"), false},
		{LikeTarget(""), false},
		{LikeTarget("VIDEO"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			if got := IsValidLikeTarget(tt.target); got != tt.valid {
				t.Errorf("IsValidLikeTarget(%q) = %v, want %v", tt.target, got, tt.valid)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidArgument,
		ErrNotFound,
		ErrNotAuthorizedOrNotFound,
		ErrConflict,
		ErrUnauthenticated,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
