package actor

import "testing"

func TestDamage_Floor(t *testing.T) {
	tests := []struct {
		attack, defense, want int
	}{
		{10, 2, 8},
		{5, 5, 1},
		{3, 10, 1},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := Damage(tt.attack, tt.defense); got != tt.want {
			t.Errorf("Damage(%d, %d) = %d, want %d", tt.attack, tt.defense, got, tt.want)
		}
	}
}

func TestPlayerStrike(t *testing.T) {
	goblin := Roster[0].Spawn(1)
	if got := PlayerStrike(NewPlayer(), goblin); got != 8 {
		t.Errorf("expected 8 damage against a goblin, got %d", got)
	}

	goblin.Health = 6
	if got := PlayerStrike(NewPlayer(), goblin); got != 8 {
		t.Errorf("damage should not depend on remaining health, got %d", got)
	}
}

func TestEnemyStrike(t *testing.T) {
	e := Enemy{ID: "brute", Name: "Brute", Health: 50, MaxHealth: 50, Attack: 20, Defense: 1}
	p := NewPlayer()
	p.Health = 5

	if got := EnemyStrike(e, p); got != 15 {
		t.Errorf("expected 15 damage, got %d", got)
	}

	weak := Enemy{Name: "Rat", Health: 3, MaxHealth: 3, Attack: 1}
	if got := EnemyStrike(weak, p); got != 1 {
		t.Errorf("expected damage floor of 1, got %d", got)
	}
}

func TestCombatant(t *testing.T) {
	tests := []struct {
		name        string
		health, max int
		wantHP      int
		knockedOut  bool
	}{
		{"wounded", 40, 100, 40, false},
		{"full", 100, 100, 100, false},
		{"down", 0, 100, 0, true},
		{"above max is clamped", 120, 100, 100, false},
		{"negative is clamped", -5, 100, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			p.Health, p.MaxHealth = tt.health, tt.max

			a, err := p.Combatant()
			if err != nil {
				t.Fatalf("Combatant() error = %v", err)
			}
			if a.MaxHP() != tt.max {
				t.Errorf("MaxHP() = %d, want %d", a.MaxHP(), tt.max)
			}
			if a.HP() != tt.wantHP {
				t.Errorf("HP() = %d, want %d", a.HP(), tt.wantHP)
			}
			if a.IsKnockedOut() != tt.knockedOut {
				t.Errorf("IsKnockedOut() = %v, want %v", a.IsKnockedOut(), tt.knockedOut)
			}
		})
	}

	if _, err := (Enemy{Name: "Husk"}).Combatant(); err == nil {
		t.Error("expected an error for an enemy without max health")
	}
}

func TestHealthFollowsCombatant(t *testing.T) {
	t.Run("player damage and healing", func(t *testing.T) {
		for _, n := range []int{1, 7, 39, 40, 41, 500} {
			p := NewPlayer()
			p.Health = 40

			a, err := p.Combatant()
			if err != nil {
				t.Fatalf("Combatant() error = %v", err)
			}
			a.SubHP(n)
			p.TakeDamage(n)
			if p.Health != a.HP() {
				t.Errorf("TakeDamage(%d) left %d, actor has %d", n, p.Health, a.HP())
			}
			if p.IsDefeated() != a.IsKnockedOut() {
				t.Errorf("after %d damage IsDefeated() = %v, actor knocked out = %v", n, p.IsDefeated(), a.IsKnockedOut())
			}

			a.AddHP(n)
			p.Heal(n)
			if p.Health != a.HP() {
				t.Errorf("Heal(%d) left %d, actor has %d", n, p.Health, a.HP())
			}
		}
	})

	t.Run("enemy damage", func(t *testing.T) {
		e := Roster[0].Spawn(1)
		for !e.IsDefeated() {
			before := e.Health
			e.TakeDamage(4)
			if e.Health != max(0, before-4) {
				t.Fatalf("TakeDamage(4) from %d left %d", before, e.Health)
			}
		}
		if e.Health != 0 {
			t.Errorf("defeated enemy has %d health", e.Health)
		}
	})

	t.Run("health above max is clamped on damage", func(t *testing.T) {
		e := Enemy{Name: "Ogre", Health: 60, MaxHealth: 50}
		e.TakeDamage(5)
		if e.Health != 45 {
			t.Errorf("Health = %d, want 45", e.Health)
		}
	})

	t.Run("no max health counts as defeated", func(t *testing.T) {
		e := Enemy{Name: "Husk", Health: 5}
		if !e.IsDefeated() {
			t.Error("enemy without max health should be defeated")
		}
		e.TakeDamage(1)
		if e.Health != 0 {
			t.Errorf("Health = %d, want 0", e.Health)
		}
	})

	t.Run("non-positive amounts are ignored", func(t *testing.T) {
		p := NewPlayer()
		p.Health = 50
		p.TakeDamage(0)
		p.TakeDamage(-3)
		p.Heal(-3)
		if p.Health != 50 {
			t.Errorf("Health = %d, want 50", p.Health)
		}
	})
}
