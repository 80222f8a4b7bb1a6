package types

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotRef addresses a roster slot: the starter, or a zero-based position in the
// additional list at the time of the call. Positions shift after a release, so
// refs must be re-resolved after every mutation.
type SlotRef struct {
	kind  SlotKind
	index int
}

// StarterSlot refers to the starter slot.
func StarterSlot() SlotRef { return SlotRef{kind: SlotStarter} }

// AdditionalSlot refers to position i of the additional list.
func AdditionalSlot(i int) SlotRef { return SlotRef{kind: SlotAdditional, index: i} }

// Kind returns which part of the roster the ref points into.
func (s SlotRef) Kind() SlotKind { return s.kind }

// Index returns the additional-list position; it is meaningless for the starter.
func (s SlotRef) Index() int { return s.index }

// IsStarter reports whether the ref points at the starter slot.
func (s SlotRef) IsStarter() bool { return s.kind == SlotStarter }

// String renders the ref in the form accepted by ParseSlotRef.
func (s SlotRef) String() string {
	if s.kind == SlotStarter {
		return "starter"
	}
	return strconv.Itoa(s.index)
}

// ParseSlotRef parses "starter" or a decimal additional-list index.
func ParseSlotRef(raw string) (SlotRef, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "starter" {
		return StarterSlot(), nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return SlotRef{}, fmt.Errorf("invalid slot %q (want \"starter\" or an index 0-%d)", raw, MaxAdditional-1)
	}
	return AdditionalSlot(i), nil
}
