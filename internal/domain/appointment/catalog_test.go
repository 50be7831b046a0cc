package appointment

import (
	"testing"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
)

func TestPriceServices(t *testing.T) {
	tests := []struct {
		name      string
		ids       []string
		wantTotal float64
		wantCode  string
	}{
		{name: "single service", ids: []string{"after-hours"}, wantTotal: 299},
		{name: "sums multiple services", ids: []string{"home-visit", "vaccination"}, wantTotal: 288},
		{name: "empty selection", ids: nil, wantCode: "no_services"},
		{name: "unknown id", ids: []string{"home-visit", "grooming"}, wantCode: "unknown_service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, total, err := PriceServices(tt.ids)
			if tt.wantCode != "" {
				if !httperr.IsBusiness(err, tt.wantCode) {
					t.Fatalf("PriceServices() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("PriceServices() error = %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %v, want %v", total, tt.wantTotal)
			}
			if len(lines) != len(tt.ids) {
				t.Errorf("lines = %d, want %d", len(lines), len(tt.ids))
			}
			for i, id := range tt.ids {
				if lines[i].ID != id {
					t.Errorf("line %d = %q, selection order not preserved", i, lines[i].ID)
				}
			}
		})
	}
}

func TestLookupService(t *testing.T) {
	svc, ok := LookupService("euthanasia")
	if !ok || svc.Price != 599 {
		t.Errorf("LookupService(euthanasia) = %+v, %v", svc, ok)
	}
	if _, ok := LookupService("nope"); ok {
		t.Error("LookupService accepted an unknown id")
	}
}
