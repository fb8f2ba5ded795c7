package core

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	importSuffixLen = 9
	base36          = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// IDGenerator produces note identifiers.
type IDGenerator func() string

// NewID returns a fresh identifier for a note created in the editor.
func NewID() string {
	return uuid.NewString()
}

// NewImportID returns an identifier for an imported note: the coarse timestamp
// in milliseconds followed by a random base36 suffix. Collisions are not checked,
// only made negligible.
func NewImportID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + randomBase36(importSuffixLen)
}

func randomBase36(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(base36)))
	for i := range b {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms; fall back to uuid entropy.
			u := uuid.New()
			b[i] = base36[int(u[i%len(u)])%len(base36)]
			continue
		}
		b[i] = base36[v.Int64()]
	}
	return string(b)
}
