package docstore

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// IDFunc generates an identifier for a new entity of the given kind.
type IDFunc func(kind string) string

// TimestampID generates "{kind}_{epochMillis}_{random 0..999}".
//
// This is the historical scheme the stored data uses. It is NOT collision-proof:
// two creations within the same millisecond can draw the same random suffix.
// Acceptable for a single-user local app; use UUID for anything stricter.
func TimestampID(kind string) string {
	return fmt.Sprintf("%s_%d_%d", kind, time.Now().UnixMilli(), rand.Intn(1000))
}

// UUID generates "{kind}_{uuid-v4}", a strictly unique alternative to
// TimestampID. New deployments should prefer it.
func UUID(kind string) string {
	return fmt.Sprintf("%s_%s", kind, uuid.NewString())
}
