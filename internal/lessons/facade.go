package lessons

import (
	"context"
	"fmt"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
	"lld/internal/patterns/facade"
	"lld/internal/patterns/payment"
)

// logNotifier sends order notifications to the application log.
type logNotifier struct {
	logger ports.Logger
	p      *printer
}

func (n logNotifier) Notify(ctx context.Context, customer, message string) error {
	if n.logger != nil {
		n.logger.Debug(ctx, "order notification", "customer", customer)
	}
	n.p.line("  notify %s: %s", customer, message)
	return nil
}

func facadeLesson(logger ports.Logger) lesson {
	return lesson{
		info: model.Lesson{
			Key:     "facade",
			Title:   "One call to place an order",
			Pattern: "Facade",
			Summary: "PlaceOrder hides inventory, a retrying payment gateway and notifications behind one method.",
		},
		run: func(ctx context.Context, p *printer) error {
			inv := facade.NewInventory()
			inv.Stock("burger", 3, 450)
			inv.Stock("fries", 10, 150)

			provider := &payment.SimulatedProvider{ProviderName: "razorpay", FailFirst: 1}
			gateway := payment.NewRetryGateway(payment.NewProcessor(provider), 3, 0)
			shop := facade.NewOrderFacade(inv, gateway, logNotifier{logger: logger, p: p})

			orders := []facade.Order{
				{ID: "A-1", Customer: "ana", SKU: "burger", Quantity: 2, Method: payment.UPI{VPA: "ana@okbank"}},
				{ID: "A-2", Customer: "raj", SKU: "fries", Quantity: 4, Method: payment.NewWallet(300)},
				{ID: "A-3", Customer: "lee", SKU: "burger", Quantity: 5, Method: payment.Card{Number: "4111111111111111"}},
				{ID: "A-4", Customer: "kim", SKU: "fries", Quantity: 1, Method: payment.Card{Number: "5500000000000004"}},
			}
			for _, o := range orders {
				c, err := shop.PlaceOrder(ctx, o)
				if err != nil {
					p.line("%s failed: %v", o.ID, err)
					continue
				}
				p.line("%s ok: charged %s, ref %s", o.ID, cents(c.Amount), c.Reference)
			}
			p.line("gateway attempts: %d", provider.Attempts())
			p.line("stock left: burger=%d fries=%d", inv.Available("burger"), inv.Available("fries"))
			return nil
		},
	}
}

func cents(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}
