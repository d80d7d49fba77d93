package memory

import (
	"fmt"
	"sync"
	"time"
)

// sequence issues record IDs and human-facing numbers of the form
// PREFIX-YYYYmmddHHMMSS-NNNN.
type sequence struct {
	mu     sync.Mutex
	prefix string
	now    func() time.Time
	next   int64
}

func newSequence(prefix string, now func() time.Time) *sequence {
	if now == nil {
		now = time.Now
	}
	return &sequence{prefix: prefix, now: now, next: 1}
}

func (s *sequence) issue() (id int64, number string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = s.next
	s.next++
	at = s.now()
	number = fmt.Sprintf("%s-%s-%04d", s.prefix, at.Format("20060102150405"), id%10000)
	return id, number, at
}
