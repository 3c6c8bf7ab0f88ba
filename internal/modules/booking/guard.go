package booking

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"
)

const guardShards = 64

// slotGuard serializes claim attempts per (provider, scheduled time) key so
// the existence check and the insert form one critical section. Keys are
// hashed onto a fixed shard set: a collision adds serialization between
// unrelated claims but never loses exclusion. The database unique index
// remains the backstop when multiple processes share one database.
type slotGuard struct {
	shards [guardShards]sync.Mutex
}

func newSlotGuard() *slotGuard {
	return &slotGuard{}
}

func slotKey(providerID int64, t time.Time) string {
	return fmt.Sprintf("%d@%s", providerID, t.UTC().Format(time.RFC3339))
}

func (g *slotGuard) lock(providerID int64, t time.Time) func() {
	h := fnv.New32a()
	h.Write([]byte(slotKey(providerID, t)))
	m := &g.shards[h.Sum32()%guardShards]
	m.Lock()
	return m.Unlock
}
