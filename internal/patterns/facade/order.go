// Package facade gives callers one PlaceOrder call in front of inventory,
// payment and notification subsystems.
package facade

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"lld/internal/patterns/payment"
)

var (
	ErrOutOfStock  = errors.New("out of stock")
	ErrUnknownItem = errors.New("unknown item")
	ErrEmptyOrder  = errors.New("order has no items")
)

// Order is what a customer asks for.
type Order struct {
	ID       string
	Customer string
	SKU      string
	Quantity int
	Method   payment.Method
}

// Confirmation is what the customer gets back.
type Confirmation struct {
	OrderID   string
	Amount    int64
	Reference string
	Message   string
}

// Inventory reserves and releases stock.
type Inventory struct {
	mu    sync.Mutex
	stock map[string]int
	price map[string]int64
}

func NewInventory() *Inventory {
	return &Inventory{stock: map[string]int{}, price: map[string]int64{}}
}

// Stock registers qty units of sku at price cents each.
func (i *Inventory) Stock(sku string, qty int, price int64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stock[sku] += qty
	i.price[sku] = price
}

// Reserve takes qty units out of stock and returns their total price.
func (i *Inventory) Reserve(sku string, qty int) (int64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	price, ok := i.price[sku]
	if !ok {
		return 0, fmt.Errorf("sku %s: %w", sku, ErrUnknownItem)
	}
	if i.stock[sku] < qty {
		return 0, fmt.Errorf("sku %s: %d requested, %d left: %w", sku, qty, i.stock[sku], ErrOutOfStock)
	}
	i.stock[sku] -= qty
	return price * int64(qty), nil
}

func (i *Inventory) Release(sku string, qty int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stock[sku] += qty
}

func (i *Inventory) Available(sku string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stock[sku]
}

// Notifier tells the customer what happened.
type Notifier interface {
	Notify(ctx context.Context, customer, message string) error
}

// OrderFacade is the single entry point for placing an order.
type OrderFacade struct {
	inventory *Inventory
	gateway   payment.Gateway
	notifier  Notifier
}

func NewOrderFacade(inventory *Inventory, gateway payment.Gateway, notifier Notifier) *OrderFacade {
	return &OrderFacade{inventory: inventory, gateway: gateway, notifier: notifier}
}

// PlaceOrder reserves stock, charges the customer and notifies them. Stock is
// released again if the charge fails. A failed notification does not undo a
// paid order; it is reported in Confirmation.Message.
func (f *OrderFacade) PlaceOrder(ctx context.Context, o Order) (Confirmation, error) {
	if o.Quantity <= 0 {
		return Confirmation{}, fmt.Errorf("order %s: %w", o.ID, ErrEmptyOrder)
	}

	amount, err := f.inventory.Reserve(o.SKU, o.Quantity)
	if err != nil {
		return Confirmation{}, fmt.Errorf("order %s: reserve: %w", o.ID, err)
	}

	receipt, err := f.gateway.Charge(ctx, payment.Charge{OrderID: o.ID, Amount: amount, Method: o.Method})
	if err != nil {
		f.inventory.Release(o.SKU, o.Quantity)
		return Confirmation{}, fmt.Errorf("order %s: payment: %w", o.ID, err)
	}

	msg := fmt.Sprintf("order %s confirmed: %d x %s (%s)", o.ID, o.Quantity, o.SKU, receipt.Detail)
	if f.notifier != nil {
		if nerr := f.notifier.Notify(ctx, o.Customer, msg); nerr != nil {
			msg += " [notification failed: " + nerr.Error() + "]"
		}
	}

	return Confirmation{OrderID: o.ID, Amount: amount, Reference: receipt.Reference, Message: msg}, nil
}

// Outbox is a Notifier that keeps messages in memory.
type Outbox struct {
	mu       sync.Mutex
	messages []string
}

func (o *Outbox) Notify(_ context.Context, customer, message string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, customer+": "+message)
	return nil
}

func (o *Outbox) Messages() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.messages...)
}
