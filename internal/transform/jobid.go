package transform

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/project-tktt/go-jobmarket/internal/domain"
)

// GeneratePlatformJobID derives the stable per-platform identifier for
// a posting. The URL hashes to the same id across runs, which keeps
// loading idempotent. Records without a URL have no natural key and get
// a timestamped one-off id instead.
func GeneratePlatformJobID(raw *domain.RawJob) string {
	if raw.JobURL != "" {
		sum := sha256.Sum256([]byte(raw.JobURL))
		return fmt.Sprintf("%s_%s", raw.Platform, hex.EncodeToString(sum[:16]))
	}
	return fmt.Sprintf("%s_no_url_%d", raw.Platform, time.Now().UnixNano())
}
