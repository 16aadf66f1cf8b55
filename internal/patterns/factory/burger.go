// Package factory builds burgers and meals through simple factories,
// factory methods and abstract factories.
package factory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKind is returned when a factory is asked for something it does not make.
var ErrUnknownKind = errors.New("unknown kind")

// Burger is anything a factory can hand over the counter.
type Burger interface {
	Name() string
	Prepare() string
}

type burger struct {
	name  string
	bun   string
	extra []string
}

func (b burger) Name() string { return b.name }

func (b burger) Prepare() string {
	parts := []string{b.bun + " bun", "patty"}
	parts = append(parts, b.extra...)
	return fmt.Sprintf("preparing %s with %s", b.name, strings.Join(parts, ", "))
}

var regularRecipes = map[string][]string{
	"basic":    nil,
	"standard": {"lettuce", "cheese"},
	"premium":  {"lettuce", "cheese", "gourmet sauce", "caramelized onions"},
}

// Kinds lists the burger kinds every factory understands, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(regularRecipes))
	for k := range regularRecipes {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// NewBurger is the simple factory: one function switching on kind.
func NewBurger(kind string) (Burger, error) {
	return makeBurger(kind, "regular", "")
}

func makeBurger(kind, bun, prefix string) (Burger, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	extra, ok := regularRecipes[kind]
	if !ok {
		return nil, fmt.Errorf("burger %q: %w", kind, ErrUnknownKind)
	}
	name := kind + " burger"
	if prefix != "" {
		name = prefix + " " + name
	}
	return burger{name: name, bun: bun, extra: extra}, nil
}

// BurgerFactory is the factory method: each brand decides how its burgers are made.
type BurgerFactory interface {
	Brand() string
	CreateBurger(kind string) (Burger, error)
}

// SinghBurger bakes on regular buns.
type SinghBurger struct{}

func (SinghBurger) Brand() string { return "SinghBurger" }

func (SinghBurger) CreateBurger(kind string) (Burger, error) {
	return makeBurger(kind, "regular", "")
}

// KingBurger bakes on wheat buns.
type KingBurger struct{}

func (KingBurger) Brand() string { return "KingBurger" }

func (KingBurger) CreateBurger(kind string) (Burger, error) {
	return makeBurger(kind, "wheat", "wheat")
}
