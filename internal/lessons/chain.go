package lessons

import (
	"context"
	"fmt"
	"strings"

	"lld/internal/config"
	"lld/internal/domain/model"
	"lld/internal/patterns/chain"
)

func chainLesson(fixture config.ATMFixture) lesson {
	return lesson{
		info: model.Lesson{
			Key:     "chain",
			Title:   "ATM note dispenser",
			Pattern: "Chain of Responsibility",
			Summary: "Each handler pays out its own denomination and forwards the remainder.",
		},
		run: func(_ context.Context, p *printer) error {
			atm, err := chain.NewDispenser(fixture.Inventory())
			if err != nil {
				return fmt.Errorf("load cash box: %w", err)
			}
			p.line("cash box: %s (balance %d)", formatBundles(atm.Inventory()), atm.Balance())

			for _, amount := range fixture.Withdrawals {
				bundles, err := atm.Dispense(amount)
				if err != nil {
					p.line("withdraw %d: %v", amount, err)
					continue
				}
				p.line("withdraw %d: %s", amount, formatBundles(bundles))
			}
			p.line("cash box: %s (balance %d)", formatBundles(atm.Inventory()), atm.Balance())
			return nil
		},
	}
}

func formatBundles(bundles []chain.Bundle) string {
	parts := make([]string, 0, len(bundles))
	for _, b := range bundles {
		parts = append(parts, fmt.Sprintf("%d x %d", b.Count, b.Denomination))
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, ", ")
}
