// Package payment charges customers through interchangeable methods and
// gateways.
package payment

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrTransient marks failures worth retrying.
	ErrTransient = errors.New("transient gateway failure")
	ErrDeclined  = errors.New("payment declined")
	// ErrUnconfirmed means money moved but the gateway never confirmed it.
	// It is never retried as a whole charge.
	ErrUnconfirmed = errors.New("payment taken but not confirmed")
)

// Method is a payment strategy picked by the customer at checkout.
type Method interface {
	Kind() string
	Pay(amount int64) (string, error)
}

// Card pays by credit or debit card.
type Card struct {
	Number string
	Holder string
}

func (c Card) Kind() string { return "card" }

func (c Card) Pay(amount int64) (string, error) {
	return fmt.Sprintf("paid %s by card ending %s", formatAmount(amount), lastFour(c.Number)), nil
}

// UPI pays through a virtual payment address.
type UPI struct {
	VPA string
}

func (u UPI) Kind() string { return "upi" }

func (u UPI) Pay(amount int64) (string, error) {
	if u.VPA == "" {
		return "", fmt.Errorf("upi: %w: missing address", ErrDeclined)
	}
	return fmt.Sprintf("paid %s via UPI %s", formatAmount(amount), u.VPA), nil
}

// Wallet pays out of a stored balance.
type Wallet struct {
	mu      sync.Mutex
	balance int64
}

func NewWallet(balance int64) *Wallet {
	return &Wallet{balance: balance}
}

func (w *Wallet) Kind() string { return "wallet" }

func (w *Wallet) Pay(amount int64) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if amount > w.balance {
		return "", fmt.Errorf("wallet balance %s: %w", formatAmount(w.balance), ErrInsufficientFunds)
	}
	w.balance -= amount
	return fmt.Sprintf("paid %s from wallet, %s left", formatAmount(amount), formatAmount(w.balance)), nil
}

func (w *Wallet) Balance() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
