package catalog

import "testing"

func TestDefaultWeightTableValid(t *testing.T) {
	if err := DefaultWeightTable().Validate(); err != nil {
		t.Errorf("default weight table should validate: %v", err)
	}
}

func TestWeightTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(WeightTable)
		wantErr bool
	}{
		{"stock", func(WeightTable) {}, false},
		{"missing tier", func(w WeightTable) { delete(w, Epic) }, true},
		{"zero weight", func(w WeightTable) { w[Exotic] = 0 }, true},
		{"negative weight", func(w WeightTable) { w[Common] = -1 }, true},
		{"not decreasing", func(w WeightTable) { w[Rare] = w[Uncommon] }, true},
		{"inverted", func(w WeightTable) { w[Mythical] = 100 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := DefaultWeightTable()
			tt.mutate(table)
			err := table.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWeightOfUnknownTier(t *testing.T) {
	table := WeightTable{Common: 10}
	if got := table.WeightOf(Exotic); got != 0 {
		t.Errorf("WeightOf(missing) = %g, want 0", got)
	}
}
