package usecase

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// newULID mints a lexicographically sortable id for ledger entries and
// negotiations. Quotes themselves use UUIDs; versions sort by creation.
func newULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Now(), entropy).String()
}
