package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/ArthurMoreiraS/OperlyService/internal/logger"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"
)

// MercadoPago creates checkout links for issued invoices. The preference's
// external reference carries the invoice ID so a webhook or manual
// reconciliation can find its way back.
type MercadoPago struct {
	prefs preference.Client
}

// NewMercadoPago returns nil when no access token is configured; payment
// links are then reported as unavailable instead of failing requests.
func NewMercadoPago(accessToken string) *MercadoPago {
	if accessToken == "" {
		return nil
	}
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		logger.Get().Sugar().Warnw("mercadopago disabled", "err", err)
		return nil
	}
	return &MercadoPago{prefs: preference.NewClient(cfg)}
}

func (m *MercadoPago) Enabled() bool {
	return m != nil
}

// PaymentLink builds a single-item checkout preference for the invoice's
// outstanding balance and returns its init point URL.
func (m *MercadoPago) PaymentLink(ctx context.Context, inv *models.Invoice) (string, error) {
	if m == nil {
		return "", fmt.Errorf("mercadopago not configured")
	}

	outstanding := inv.Total.Sub(inv.PaidAmount)
	amount, _ := outstanding.Float64()

	req := preference.Request{
		ExternalReference: inv.ID,
		Items: []preference.ItemRequest{{
			ID:        inv.ID,
			Title:     fmt.Sprintf("Fatura %s", inv.Number),
			Quantity:  1,
			UnitPrice: amount,
		}},
	}

	resp, err := m.prefs.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}
	return resp.InitPoint, nil
}
