package naming

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrSlotOutOfRange is returned when writing to a slot the cache was not sized for.
var ErrSlotOutOfRange = errors.New("slot out of range")

// Entry is the cached name triple for one polity slot.
type Entry struct {
	FullName   string `json:"full_name"`   // government-form name
	LongName   string `json:"long_name"`   // display-mode name
	AvatarName string `json:"avatar_name"` // title + persona
}

// Cache holds one Entry per polity slot for the duration of a match.
// Its size is fixed at creation.
type Cache struct {
	mu      sync.RWMutex
	entries []Entry
	stored  []bool
	logger  *slog.Logger
}

// NewCache allocates a cache for n slots. A nil logger uses slog.Default().
func NewCache(n int, logger *slog.Logger) *Cache {
	if n < 0 {
		n = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		entries: make([]Entry, n),
		stored:  make([]bool, n),
		logger:  logger,
	}
}

// Len returns the number of slots.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Store overwrites the entry for slot. Out-of-range slots are logged and
// left untouched.
func (c *Cache) Store(slot int, e Entry) error {
	if c == nil {
		return fmt.Errorf("%w: cache not initialized (slot %d)", ErrSlotOutOfRange, slot)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if slot < 0 || slot >= len(c.entries) {
		c.logger.Error("naming cache index out of range",
			"slot", slot,
			"size", len(c.entries),
			"full_name", e.FullName,
		)
		return fmt.Errorf("%w: slot %d, size %d", ErrSlotOutOfRange, slot, len(c.entries))
	}
	c.entries[slot] = e
	c.stored[slot] = true
	return nil
}

// Lookup returns the cached entry for slot, or rough for all three names when
// the slot is out of range or has not been computed yet.
func (c *Cache) Lookup(slot int, rough string) Entry {
	if e, ok := c.Get(slot); ok {
		return e
	}
	return Entry{FullName: rough, LongName: rough, AvatarName: rough}
}

// Get returns the cached entry and whether one has been stored.
func (c *Cache) Get(slot int) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if slot < 0 || slot >= len(c.entries) || !c.stored[slot] {
		return Entry{}, false
	}
	return c.entries[slot], true
}
