package lessons

import (
	"context"

	"lld/internal/domain/model"
	"lld/internal/patterns/factory"
)

func factoryLesson() lesson {
	return lesson{
		info: model.Lesson{
			Key:     "factory",
			Title:   "Burger factory",
			Pattern: "Factory",
			Summary: "Simple factory, factory method and abstract factory building burgers and meals.",
		},
		run: func(_ context.Context, p *printer) error {
			p.line("simple factory:")
			for _, kind := range factory.Kinds() {
				b, err := factory.NewBurger(kind)
				if err != nil {
					return err
				}
				p.line("  %s", b.Prepare())
			}
			if _, err := factory.NewBurger("vegan"); err != nil {
				p.line("  rejected: %v", err)
			}

			p.line("factory method:")
			for _, f := range []factory.BurgerFactory{factory.SinghBurger{}, factory.KingBurger{}} {
				b, err := f.CreateBurger("standard")
				if err != nil {
					return err
				}
				p.line("  %s -> %s", f.Brand(), b.Prepare())
			}

			p.line("abstract factory:")
			for _, brand := range []string{"singh", "king"} {
				meals, err := factory.ForBrand(brand)
				if err != nil {
					return err
				}
				b, err := meals.CreateBurger("premium")
				if err != nil {
					return err
				}
				g, err := meals.CreateGarlicBread("cheese")
				if err != nil {
					return err
				}
				p.line("  %s meal: %s + %s", meals.Brand(), b.Name(), g.Name())
			}
			return nil
		},
	}
}
