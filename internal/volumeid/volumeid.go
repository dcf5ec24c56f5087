// Package volumeid provides a strongly typed index wrapper for volume ID
// spaces.
//
// An ID is an opaque handle over an unsigned index. The phantom Tag type
// parameter makes IDs from distinct spaces incomparable at compile time,
// so a destination-volume index can never be confused with, say, a solid
// index or a raw loop counter. The zero value is invalid; validity must
// be established before the wrapped value is read in checked form.
package volumeid

// Invalid is the raw value an unchecked read of an unassigned ID yields:
// all bits set, distinguishable from any valid index 0..N-1.
const Invalid = ^uint(0)

// ID wraps an unsigned index in the ID space named by Tag.
// The zero value is invalid.
type ID[Tag any] struct {
	// Stored biased by one so that the zero value is the invalid state.
	plusOne uint
}

// New returns a valid ID holding the given index.
func New[Tag any](index uint) ID[Tag] {
	return ID[Tag]{plusOne: index + 1}
}

// IsValid reports whether the ID has been assigned a real slot.
func (id ID[Tag]) IsValid() bool {
	return id.plusOne != 0
}

// Get returns the wrapped index. It panics when the ID is invalid: an
// unassigned ID read in checked form is a programming error, not a
// recoverable condition.
func (id ID[Tag]) Get() uint {
	if !id.IsValid() {
		panic("volumeid: checked read of invalid ID")
	}
	return id.plusOne - 1
}

// UncheckedGet returns the wrapped index without a validity check; an
// invalid ID yields Invalid. This is the escape hatch for final
// remapping steps where validity was already established upstream
// (atypical).
func (id ID[Tag]) UncheckedGet() uint {
	return id.plusOne - 1
}

// Next returns the ID advanced by one. Only meaningful on a valid ID;
// that precondition is not enforced at runtime in this build.
func (id ID[Tag]) Next() ID[Tag] {
	return ID[Tag]{plusOne: id.plusOne + 1}
}

// Increment advances the ID by one in place. Only meaningful on a valid
// ID; that precondition is not enforced at runtime in this build.
func (id *ID[Tag]) Increment() {
	id.plusOne++
}
