package appointment

import (
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
)

// ===============================
// Service Catalog
// ===============================

// The catalog is a fixed enumeration with fixed prices. There is no dynamic
// pricing or discounting; bookings snapshot the price at creation time.

type CatalogService struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var catalog = []CatalogService{
	{ID: "home-visit", Name: "Home visit", Price: 199},
	{ID: "after-hours", Name: "After-hours visit", Price: 299},
	{ID: "vaccination", Name: "Vaccination", Price: 89},
	{ID: "health-check", Name: "General health check", Price: 129},
	{ID: "lab-sample", Name: "Lab sample collection", Price: 149},
	{ID: "euthanasia", Name: "At-home euthanasia", Price: 599},
}

func Catalog() []CatalogService {
	out := make([]CatalogService, len(catalog))
	copy(out, catalog)
	return out
}

func LookupService(id string) (CatalogService, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return CatalogService{}, false
}

// PriceServices resolves the selected catalog ids into priced lines plus the
// booking total. Order of selection is preserved.
func PriceServices(ids []string) (models.ServiceLines, float64, error) {
	if len(ids) == 0 {
		return nil, 0, httperr.ErrValidation("no_services", "Select at least one service.")
	}

	lines := make(models.ServiceLines, 0, len(ids))
	var total float64

	for _, id := range ids {
		svc, ok := LookupService(id)
		if !ok {
			return nil, 0, httperr.ErrValidation("unknown_service", "Unknown service: "+id)
		}
		lines = append(lines, models.ServiceLine{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
		})
		total += svc.Price
	}

	return lines, total, nil
}
