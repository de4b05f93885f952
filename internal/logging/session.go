package logging

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

const (
	sessionFilePrefix = "session_"
	sessionFileSuffix = ".log"
)

// GenerateSessionID creates a unique identifier for one viewer run.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
func GenerateSessionID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortSessionID returns the random suffix of a session ID.
// Example: "20251217_205106_a7b3" -> "a7b3"
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}

// SessionFilename generates the log filename for a session ID.
func SessionFilename(sessionID string) string {
	return sessionFilePrefix + sessionID + sessionFileSuffix
}

// ParseSessionFilename extracts the session ID from a log filename.
func ParseSessionFilename(filename string) (string, bool) {
	if !strings.HasPrefix(filename, sessionFilePrefix) || !strings.HasSuffix(filename, sessionFileSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(filename, sessionFilePrefix), sessionFileSuffix)
	return id, id != ""
}
