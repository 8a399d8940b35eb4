package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"1", StartFishing},
		{"fishing", StartFishing},
		{"2", ChooseZone},
		{"3", SellFish},
		{"sell", SellFish},
		{"4", Inventory},
		{"inv", Inventory},
		{"5", Shop},
		{"6", Discovery},
		{"book", Discovery},
		{"7", Quests},
		{"QUEST", Quests},
		{"8", Exit},
		{"quit", Exit},
		{"  fish  ", StartFishing},
		{"", Unknown},
		{"9", Unknown},
		{"dance", Unknown},
	}

	for _, tt := range tests {
		if got := Parse(tt.input); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMenuCoversAllCommands(t *testing.T) {
	menu := Menu()
	if len(menu) != 8 {
		t.Fatalf("menu has %d entries, want 8", len(menu))
	}
	for _, cmd := range menu {
		if cmd == Unknown {
			t.Error("menu must not contain Unknown")
		}
		if cmd.String() == "Unknown" {
			t.Errorf("command %d has no label", cmd)
		}
	}
}

func TestParseSellOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SellOrder
		wantErr bool
	}{
		{"all", SellOrder{All: true}, false},
		{"ALL", SellOrder{All: true}, false},
		{"x2 Carp", SellOrder{Count: 2, Species: "Carp"}, false},
		{"sell x3 Grass carp", SellOrder{Count: 3, Species: "Grass carp"}, false},
		{"5 Catfish", SellOrder{Count: 5, Species: "Catfish"}, false},
		{"x0 Carp", SellOrder{}, true},
		{"xtwo Carp", SellOrder{}, true},
		{"Carp", SellOrder{}, true},
		{"", SellOrder{}, true},
	}

	for _, tt := range tests {
		got, err := ParseSellOrder(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSellOrder(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSellOrder(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSellOrder(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestMatchSpecies(t *testing.T) {
	candidates := []string{"Carp", "Grass carp", "Snakehead fish", "Giant Blue Marlin"}

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Carp", "Carp", true},
		{"carp", "Carp", true},
		{"carrp", "Carp", true},
		{"grass carp", "Grass carp", true},
		{"snakehead fsh", "Snakehead fish", true},
		{"giant blue marlin", "Giant Blue Marlin", true},
		{"tuna", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := MatchSpecies(tt.input, candidates)
		if ok != tt.ok || got != tt.want {
			t.Errorf("MatchSpecies(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMatchSpeciesPrefersCloser(t *testing.T) {
	got, ok := MatchSpecies("Lanternfish", []string{"Brilliant Lanternfish", "Lanternfish"})
	if !ok || got != "Lanternfish" {
		t.Errorf("exact match should win, got %q", got)
	}
}
