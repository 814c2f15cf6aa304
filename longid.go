package longid

import (
	"errors"
	"sync"
	"time"
)

const (
	// Bit allocations
	timestampBits = 44
	sequenceBits  = 8
	serverIDBits  = 12

	// Max values
	maxSequence = (1 << sequenceBits) - 1 // 255
	maxServerID = (1 << serverIDBits) - 1 // 4095

	// Shifts
	timestampShift = sequenceBits + serverIDBits
	sequenceShift  = serverIDBits
)

// ErrInvalidServerID is returned when a server ID is not in range [0, 4095].
var ErrInvalidServerID = errors.New("server ID must be between 0 and 4095")

// Generator generates longid IDs for one server.
type Generator struct {
	mu         sync.Mutex
	serverID   uint16
	sequence   uint16
	lastMillis int64
}

// NewGenerator creates a generator whose IDs embed the given server ID.
// serverID must be between 0 and 4095 (inclusive).
func NewGenerator(serverID uint16) (*Generator, error) {
	if serverID > maxServerID {
		return nil, ErrInvalidServerID
	}
	return &Generator{serverID: serverID}, nil
}

// NewDefaultGenerator creates a generator with server ID 0.
func NewDefaultGenerator() *Generator {
	return &Generator{}
}

// ServerID returns the server ID embedded in every ID this generator issues.
func (g *Generator) ServerID() uint16 {
	return g.serverID
}

// nowMillis reads the wall clock truncated to milliseconds.
// Swapped out in tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// NextID creates a new unique 64-bit ID.
// Thread-safe. When 256 IDs have already been issued in the current
// millisecond it sleeps for a millisecond and re-reads the clock, so
// the call is delayed but never fails. The lock is held across that
// sleep: under overload all callers serialize and drain in lock
// acquisition order once the clock advances.
func (g *Generator) NextID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := nowMillis()
	for {
		if now != g.lastMillis {
			g.sequence = 0
			break
		}
		if g.sequence >= maxSequence {
			// Sequence exhausted for this millisecond.
			time.Sleep(time.Millisecond)
			now = nowMillis()
			continue
		}
		g.sequence++
		break
	}
	g.lastMillis = now

	return uint64(now)<<timestampShift |
		uint64(g.sequence)<<sequenceShift |
		uint64(g.serverID)
}
