package utils

import (
	"fmt"
	"time"
)

// GenerateVoterID produces an official voter identifier of the form
// VOT-<year>-<4 digit number>, e.g. VOT-2025-8842. The identifier is
// assigned once at registration and never changes.
func GenerateVoterID(now time.Time) (string, error) {
	n, err := SecureRandomInt(9000)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter id: %w", err)
	}
	return fmt.Sprintf("VOT-%d-%04d", now.Year(), 1000+n), nil
}
