package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringRunes caps a stored value so one entry cannot crowd the debug line
const MaxStringRunes = 16

// StringMetric is a string value safe for concurrent Store and Load
// The zero value holds ""
type StringMetric struct {
	v atomic.Value
}

// Store replaces the value, keeping at most MaxStringRunes runes
func (s *StringMetric) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringRunes {
		val = string([]rune(val)[:MaxStringRunes])
	}
	s.v.Store(val)
}

// Load returns the current value
func (s *StringMetric) Load() string {
	val, _ := s.v.Load().(string)
	return val
}
