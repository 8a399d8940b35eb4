package player

import "testing"

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 100},
		{1, 200},
		{10, 1100},
		{99, 10000},
	}
	for _, tt := range tests {
		if got := XPForLevel(tt.level); got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGrantXPLevelUp(t *testing.T) {
	s := NewState("Lake", 0)

	if gained := s.GrantXP(50); gained != 0 {
		t.Errorf("50 xp at level 0 should not level, gained %d", gained)
	}
	if gained := s.GrantXP(60); gained != 1 {
		t.Errorf("reaching 110 xp should gain 1 level, gained %d", gained)
	}
	if s.Level != 1 {
		t.Errorf("level = %d, want 1", s.Level)
	}
	if s.XP != 10 {
		t.Errorf("leftover xp = %d, want 10", s.XP)
	}
}

func TestGrantXPMultiLevel(t *testing.T) {
	s := NewState("Lake", 0)
	// 100 + 200 + 300 = 600 xp clears three levels exactly.
	if gained := s.GrantXP(600); gained != 3 {
		t.Errorf("600 xp should gain 3 levels, gained %d", gained)
	}
	if s.Level != 3 || s.XP != 0 {
		t.Errorf("state = level %d, xp %d, want 3, 0", s.Level, s.XP)
	}
}

func TestGrantXPMaxLevel(t *testing.T) {
	s := NewState("Lake", 0)
	s.Level = MaxLevel

	if gained := s.GrantXP(1000000); gained != 0 {
		t.Errorf("max level should gain nothing, gained %d", gained)
	}
	if s.XP != 0 {
		t.Errorf("max level xp pool should stay empty, got %d", s.XP)
	}
	if s.XPProgressPercent() != 100 {
		t.Errorf("max level progress = %g, want 100", s.XPProgressPercent())
	}
}

func TestXPProgressPercent(t *testing.T) {
	s := NewState("Lake", 0)
	s.XP = 50
	if got := s.XPProgressPercent(); got != 50 {
		t.Errorf("progress = %g, want 50", got)
	}
}
