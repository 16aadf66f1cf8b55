package factory

import (
	"fmt"
	"strings"
)

// GarlicBread is the side dish produced alongside a burger.
type GarlicBread interface {
	Name() string
	Prepare() string
}

type garlicBread struct {
	name    string
	base    string
	topping string
}

func (g garlicBread) Name() string { return g.name }

func (g garlicBread) Prepare() string {
	if g.topping == "" {
		return fmt.Sprintf("preparing %s on %s dough", g.name, g.base)
	}
	return fmt.Sprintf("preparing %s on %s dough topped with %s", g.name, g.base, g.topping)
}

var breadToppings = map[string]string{
	"basic":  "",
	"cheese": "melted cheese",
}

// MealFactory is the abstract factory: it creates a family of products that
// belong together.
type MealFactory interface {
	BurgerFactory
	CreateGarlicBread(kind string) (GarlicBread, error)
}

// SinghMeals pairs regular burgers with regular garlic bread.
type SinghMeals struct{ SinghBurger }

func (SinghMeals) CreateGarlicBread(kind string) (GarlicBread, error) {
	return makeBread(kind, "regular", "")
}

// KingMeals pairs wheat burgers with wheat garlic bread.
type KingMeals struct{ KingBurger }

func (KingMeals) CreateGarlicBread(kind string) (GarlicBread, error) {
	return makeBread(kind, "wheat", "wheat")
}

func makeBread(kind, base, prefix string) (GarlicBread, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	topping, ok := breadToppings[kind]
	if !ok {
		return nil, fmt.Errorf("garlic bread %q: %w", kind, ErrUnknownKind)
	}
	name := kind + " garlic bread"
	if prefix != "" {
		name = prefix + " " + name
	}
	return garlicBread{name: name, base: base, topping: topping}, nil
}

// ForBrand resolves a MealFactory by brand name, case-insensitively.
func ForBrand(brand string) (MealFactory, error) {
	switch strings.ToLower(strings.TrimSpace(brand)) {
	case "singh", "singhburger":
		return SinghMeals{}, nil
	case "king", "kingburger":
		return KingMeals{}, nil
	default:
		return nil, fmt.Errorf("brand %q: %w", brand, ErrUnknownKind)
	}
}
