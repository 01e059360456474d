// internal/daily/daily.go
//
// Deterministic date-keyed target selection for the "daily" game mode.
// Every process picks the same candidate for a given date and salt, so a
// restart (or another instance) serves the same daily word without any
// shared storage.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// TargetIndex returns a deterministic candidate index for a date using
// HMAC-SHA256(salt, YYYY-MM-DD) % candidatesLen.
func TargetIndex(date time.Time, salt string, candidatesLen int) int {
	if candidatesLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(candidatesLen))
}
