package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

// Charge is a request to move money from a customer to a merchant.
type Charge struct {
	OrderID string
	Amount  int64
	Method  Method
}

// Receipt is returned for a confirmed charge.
type Receipt struct {
	Reference string
	Gateway   string
	Detail    string
}

// Gateway charges a customer.
type Gateway interface {
	Charge(ctx context.Context, c Charge) (Receipt, error)
}

// Provider supplies the steps that differ between gateways. Processor runs
// them in a fixed order.
type Provider interface {
	Name() string
	Initiate(ctx context.Context, c Charge) (string, error)
	Confirm(ctx context.Context, reference string) error
}

// confirmAttempts bounds how often Processor re-sends a confirmation.
const confirmAttempts = 3

// Processor is the template: validate, initiate, pay, confirm.
type Processor struct {
	provider Provider
}

func NewProcessor(provider Provider) *Processor {
	return &Processor{provider: provider}
}

func (p *Processor) Charge(ctx context.Context, c Charge) (Receipt, error) {
	if err := validate(c); err != nil {
		return Receipt{}, err
	}
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	ref, err := p.provider.Initiate(ctx, c)
	if err != nil {
		return Receipt{}, fmt.Errorf("%s initiate: %w", p.provider.Name(), err)
	}

	detail, err := c.Method.Pay(c.Amount)
	if err != nil {
		return Receipt{}, fmt.Errorf("%s pay: %w", p.provider.Name(), err)
	}

	// Money has moved: failures past this point wrap ErrUnconfirmed, never
	// ErrTransient.
	if err := p.confirm(ctx, ref); err != nil {
		return Receipt{}, fmt.Errorf("%s confirm %s: %w: %v", p.provider.Name(), ref, ErrUnconfirmed, err)
	}

	return Receipt{Reference: ref, Gateway: p.provider.Name(), Detail: detail}, nil
}

// confirm re-sends a confirmation for the same reference while it fails
// transiently. Confirming a reference twice is harmless.
func (p *Processor) confirm(ctx context.Context, ref string) error {
	var err error
	for range confirmAttempts {
		if err = p.provider.Confirm(ctx, ref); err == nil || !errors.Is(err, ErrTransient) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}

func validate(c Charge) error {
	if c.Amount <= 0 {
		return fmt.Errorf("order %s: %w", c.OrderID, ErrInvalidAmount)
	}
	if c.Method == nil {
		return fmt.Errorf("order %s: %w: no payment method", c.OrderID, ErrDeclined)
	}
	return nil
}

// SimulatedProvider is an in-process provider for demos and tests. It fails
// the first FailFirst initiations and the first FailConfirm confirmations
// with ErrTransient.
type SimulatedProvider struct {
	ProviderName string
	FailFirst    int32
	FailConfirm  int32

	attempts atomic.Int32
	confirms atomic.Int32
	seq      atomic.Int64
}

func (s *SimulatedProvider) Name() string {
	if s.ProviderName == "" {
		return "simulated"
	}
	return s.ProviderName
}

func (s *SimulatedProvider) Initiate(_ context.Context, c Charge) (string, error) {
	if s.attempts.Add(1) <= s.FailFirst {
		return "", ErrTransient
	}
	return fmt.Sprintf("%s-%s-%04d", strings.ToUpper(s.Name()), c.OrderID, s.seq.Add(1)), nil
}

func (s *SimulatedProvider) Confirm(context.Context, string) error {
	if s.confirms.Add(1) <= s.FailConfirm {
		return ErrTransient
	}
	return nil
}

// Confirms reports how many times Confirm was called.
func (s *SimulatedProvider) Confirms() int {
	return int(s.confirms.Load())
}

// Attempts reports how many times Initiate was called.
func (s *SimulatedProvider) Attempts() int {
	return int(s.attempts.Load())
}
