package player

// XPForLevel returns the XP needed to advance from the given level.
func XPForLevel(level int) int {
	if level == 0 {
		return 100
	}
	return 100 + level*100
}

// GrantXP adds experience and applies level-ups, returning the number of
// levels gained. At MaxLevel the XP pool is zeroed and stays there.
func (s *State) GrantXP(xp int) int {
	if s.Level >= MaxLevel {
		s.XP = 0
		return 0
	}

	s.XP += xp
	gained := 0
	for s.Level < MaxLevel && s.XP >= XPForLevel(s.Level) {
		s.XP -= XPForLevel(s.Level)
		s.Level++
		gained++
	}
	if s.Level >= MaxLevel {
		s.Level = MaxLevel
		s.XP = 0
	}
	return gained
}

// XPProgressPercent returns progress toward the next level as 0-100.
func (s *State) XPProgressPercent() float64 {
	if s.Level >= MaxLevel {
		return 100
	}
	needed := XPForLevel(s.Level)
	if needed == 0 {
		return 0
	}
	return float64(s.XP) / float64(needed) * 100
}
