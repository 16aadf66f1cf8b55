package lessons

import (
	"context"

	"lld/internal/domain/model"
	"lld/internal/patterns/decorator"
)

func decoratorLesson() lesson {
	return lesson{
		info: model.Lesson{
			Key:     "decorator",
			Title:   "Mario power-ups",
			Pattern: "Decorator",
			Summary: "Power-ups wrap the character and add abilities without subclassing.",
		},
		run: func(_ context.Context, p *printer) error {
			var mario decorator.Character = decorator.Mario{}
			p.line("%s", mario.Abilities())

			mario = decorator.WithHeightUp(mario)
			p.line("%s", mario.Abilities())

			mario = decorator.WithGunPower(mario)
			p.line("%s", mario.Abilities())

			star := decorator.WithStarPower(mario)
			p.line("%s", star.Abilities())
			p.line("star wore off: %s", star.Expire().Abilities())
			return nil
		},
	}
}
