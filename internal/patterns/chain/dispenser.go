// Package chain dispenses ATM cash through a chain of note handlers, one per
// denomination, largest first.
package chain

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrCannotDispense      = errors.New("amount cannot be dispensed with available notes")
	ErrInvalidDenomination = errors.New("denomination must be positive")
)

// Bundle is a stack of notes of one denomination.
type Bundle struct {
	Denomination int
	Count        int
}

func (b Bundle) Total() int {
	return b.Denomination * b.Count
}

// NoteHandler owns one denomination. It takes as many of its notes as it can
// and hands the remainder to the next handler.
type NoteHandler struct {
	denomination int
	available    int
	next         *NoteHandler
}

func NewNoteHandler(denomination, available int) *NoteHandler {
	return &NoteHandler{denomination: denomination, available: available}
}

// SetNext links h to next and returns next so chains can be built fluently.
func (h *NoteHandler) SetNext(next *NoteHandler) *NoteHandler {
	h.next = next
	return next
}

func (h *NoteHandler) Denomination() int { return h.denomination }
func (h *NoteHandler) Available() int    { return h.available }

// Plan walks the chain from h without touching inventory. It returns the
// bundles each handler would pay out and what is left over.
func (h *NoteHandler) Plan(amount int) ([]Bundle, int) {
	var plan []Bundle
	for cur := h; cur != nil && amount > 0; cur = cur.next {
		notes := min(amount/cur.denomination, cur.available)
		if notes > 0 {
			plan = append(plan, Bundle{Denomination: cur.denomination, Count: notes})
			amount -= notes * cur.denomination
		}
	}
	return plan, amount
}

// Dispenser is an ATM cash box. Withdrawals are all-or-nothing and safe for
// concurrent use.
type Dispenser struct {
	mu       sync.Mutex
	head     *NoteHandler
	handlers map[int]*NoteHandler
}

// NewDispenser builds the chain from an inventory of denomination to note count.
func NewDispenser(inventory map[int]int) (*Dispenser, error) {
	denoms := make([]int, 0, len(inventory))
	for d, n := range inventory {
		if d <= 0 {
			return nil, fmt.Errorf("denomination %d: %w", d, ErrInvalidDenomination)
		}
		if n < 0 {
			return nil, fmt.Errorf("denomination %d has negative count %d", d, n)
		}
		denoms = append(denoms, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(denoms)))

	d := &Dispenser{handlers: make(map[int]*NoteHandler, len(denoms))}
	var tail *NoteHandler
	for _, denom := range denoms {
		h := NewNoteHandler(denom, inventory[denom])
		d.handlers[denom] = h
		if tail == nil {
			d.head = h
		} else {
			tail.SetNext(h)
		}
		tail = h
	}
	return d, nil
}

// Dispense pays out amount greedily, largest denomination first. The greedy
// walk does not backtrack: it can fail even when some other combination of
// the available notes would add up. On failure inventory is left untouched.
func (d *Dispenser) Dispense(amount int) ([]Bundle, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("dispense %d: %w", amount, ErrInvalidAmount)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.head == nil {
		return nil, fmt.Errorf("dispense %d: empty cash box: %w", amount, ErrCannotDispense)
	}

	plan, remainder := d.head.Plan(amount)
	if remainder > 0 {
		return nil, fmt.Errorf("dispense %d: %d left over: %w", amount, remainder, ErrCannotDispense)
	}

	for _, b := range plan {
		d.handlers[b.Denomination].available -= b.Count
	}
	return plan, nil
}

// Refill adds notes of a denomination, creating a handler for it if needed.
func (d *Dispenser) Refill(denomination, count int) error {
	if denomination <= 0 {
		return fmt.Errorf("refill %d: %w", denomination, ErrInvalidDenomination)
	}
	if count < 0 {
		return fmt.Errorf("refill %d: negative count %d", denomination, count)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if h, ok := d.handlers[denomination]; ok {
		h.available += count
		return nil
	}

	h := NewNoteHandler(denomination, count)
	d.handlers[denomination] = h

	// Splice into the chain keeping descending order.
	if d.head == nil || d.head.denomination < denomination {
		h.next = d.head
		d.head = h
		return nil
	}
	cur := d.head
	for cur.next != nil && cur.next.denomination > denomination {
		cur = cur.next
	}
	h.next = cur.next
	cur.next = h
	return nil
}

// Inventory returns the chain in order, largest denomination first.
func (d *Dispenser) Inventory() []Bundle {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Bundle
	for cur := d.head; cur != nil; cur = cur.next {
		out = append(out, Bundle{Denomination: cur.denomination, Count: cur.available})
	}
	return out
}

// Balance is the total cash held.
func (d *Dispenser) Balance() int {
	total := 0
	for _, b := range d.Inventory() {
		total += b.Total()
	}
	return total
}
