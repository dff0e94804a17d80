package memory

import "time"

// Keys returns the number of keys with a held or awaited lock.
func (l *Locker) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

// SetClock replaces the time source used for expiry.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
