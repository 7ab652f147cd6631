// Package policy implements the result access policy: whether a draw slot
// counts as active and whether its result may be disclosed to a viewer,
// given a wall-clock instant and a target draw day. The policy performs no
// I/O and never samples the clock itself; callers sample "now" once per
// evaluation pass so every slot in one rendering sees the same boundary.
package policy

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Slot is one scheduled daily draw time.
type Slot struct {
	Hour   int
	Minute int
}

// Label returns the canonical 24-hour HH:MM form of the slot.
func (s Slot) Label() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// At returns the scheduled instant of the slot on the given calendar day.
// The day's location is preserved.
func (s Slot) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.Hour, s.Minute, 0, 0, day.Location())
}

// ParseSlot parses a 24-hour "HH:MM" slot time. Stored values sometimes
// carry seconds ("HH:MM:SS"); the seconds are ignored.
func ParseSlot(value string) (Slot, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Slot{}, fmt.Errorf("invalid slot time %q: expected HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Slot{}, fmt.Errorf("invalid slot time %q: bad hour", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Slot{}, fmt.Errorf("invalid slot time %q: bad minute", value)
	}
	return Slot{Hour: hour, Minute: minute}, nil
}

// MustParseSlot is ParseSlot for slot times that are known good, such as the
// configured slot set validated at startup. A malformed value is a
// programmer error and panics.
func MustParseSlot(value string) Slot {
	slot, err := ParseSlot(value)
	if err != nil {
		panic(err)
	}
	return slot
}

// ParseSlots parses a configured slot set, rejecting duplicates.
func ParseSlots(values []string) ([]Slot, error) {
	slots := make([]Slot, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		slot, err := ParseSlot(value)
		if err != nil {
			return nil, err
		}
		if seen[slot.Label()] {
			return nil, fmt.Errorf("duplicate slot time %q", slot.Label())
		}
		seen[slot.Label()] = true
		slots = append(slots, slot)
	}
	return slots, nil
}

// DayRelation classifies a target draw day relative to "now".
type DayRelation int

const (
	DayPast DayRelation = iota
	DayToday
	DayFuture
)

// RelateDay compares at calendar-day granularity: two instants differing
// only in time-of-day relate as the same day. Both arguments must already be
// expressed in the board's location.
func RelateDay(now, target time.Time) DayRelation {
	ny, nm, nd := now.Date()
	ty, tm, td := target.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	day := time.Date(ty, tm, td, 0, 0, 0, 0, now.Location())
	switch {
	case day.Before(today):
		return DayPast
	case day.After(today):
		return DayFuture
	default:
		return DayToday
	}
}

// IsSlotActive reports whether the slot's scheduled instant has arrived on
// the target day. Every slot of a past day is active; no slot of a future
// day is. On the current day the boundary is inclusive: the slot becomes
// active at exactly its scheduled instant.
func IsSlotActive(now, target time.Time, slot Slot) bool {
	switch RelateDay(now, target) {
	case DayPast:
		return true
	case DayFuture:
		return false
	default:
		return !now.Before(slot.At(target))
	}
}

// ShouldDiscloseResult reports whether a viewer may see the slot's result.
// Disclosure tracks activation exactly: a result is never shown before its
// draw time has passed, and results of past days are always disclosable.
func ShouldDiscloseResult(now, target time.Time, slot Slot) bool {
	switch RelateDay(now, target) {
	case DayPast:
		return true
	case DayFuture:
		return false
	default:
		return IsSlotActive(now, target, slot)
	}
}
