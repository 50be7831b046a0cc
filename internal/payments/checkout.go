package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
)

// Checkout wraps the hosted checkout: the server only creates a preference
// and hands the pay URL back; authorization, capture and the 7-day hold are
// the processor's concern.
type Checkout struct {
	prefs preference.Client
}

func NewCheckout(accessToken string) (*Checkout, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &Checkout{prefs: preference.NewClient(cfg)}, nil
}

// CreateForAppointment builds one preference from the booking's priced
// service lines. The appointment id is the external reference the webhook
// reports back.
func (c *Checkout) CreateForAppointment(
	ctx context.Context,
	ap *models.Appointment,
	externalRef string,
) (string, error) {

	items := make([]preference.ItemRequest, 0, len(ap.Services))
	for _, line := range ap.Services {
		items = append(items, preference.ItemRequest{
			ID:        line.ID,
			Title:     line.Name,
			Quantity:  1,
			UnitPrice: line.Price,
		})
	}

	resp, err := c.prefs.Create(ctx, preference.Request{
		ExternalReference: externalRef,
		Items:             items,
	})
	if err != nil {
		return "", httperr.ErrDependency("checkout_unavailable", "Could not start checkout. Try again.")
	}

	return resp.InitPoint, nil
}
