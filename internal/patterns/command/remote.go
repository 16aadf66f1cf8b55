package command

import (
	"fmt"
	"sync"
)

// Remote holds a fixed number of programmable slots and remembers what was
// pressed so it can be undone.
type Remote struct {
	mu      sync.Mutex
	slots   []Command
	history []Command
}

func NewRemote(slots int) *Remote {
	return &Remote{slots: make([]Command, slots)}
}

// SetCommand programs a slot. A nil command clears it.
func (r *Remote) SetCommand(slot int, c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot < 0 || slot >= len(r.slots) {
		return fmt.Errorf("slot %d of %d: %w", slot, len(r.slots), ErrInvalidSlot)
	}
	r.slots[slot] = c
	return nil
}

// Press executes the command in slot.
func (r *Remote) Press(slot int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot < 0 || slot >= len(r.slots) {
		return "", fmt.Errorf("slot %d of %d: %w", slot, len(r.slots), ErrInvalidSlot)
	}
	c := r.slots[slot]
	if c == nil {
		return "", fmt.Errorf("slot %d: %w", slot, ErrNoCommand)
	}
	r.history = append(r.history, c)
	return c.Execute(), nil
}

// Undo reverts the most recently pressed command.
func (r *Remote) Undo() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return "", ErrNothingToUndo
	}
	c := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return c.Undo(), nil
}

// Pending reports how many presses can still be undone.
func (r *Remote) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}
