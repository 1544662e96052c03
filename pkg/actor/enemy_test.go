package actor

import (
	"testing"

	"github.com/jwebster45206/quest-engine/pkg/dice"
)

func TestArchetype_Spawn(t *testing.T) {
	t.Run("level 1 goblin keeps base stats", func(t *testing.T) {
		e := Roster[0].Spawn(1)

		if e.Name != "Goblin" {
			t.Errorf("expected name 'Goblin', got '%s'", e.Name)
		}
		if e.Health != 30 || e.MaxHealth != 30 {
			t.Errorf("expected 30/30 health, got %d/%d", e.Health, e.MaxHealth)
		}
		if e.Attack != 5 || e.Defense != 2 {
			t.Errorf("expected attack 5 defense 2, got %d/%d", e.Attack, e.Defense)
		}
		if e.ExpReward != 15 || e.GoldReward != 10 {
			t.Errorf("expected rewards 15/10, got %d/%d", e.ExpReward, e.GoldReward)
		}
		if e.ID == "" {
			t.Error("expected an id")
		}
		if e.DropChance != 0 {
			t.Errorf("expected drop chance to be unset, got %v", e.DropChance)
		}
	})

	t.Run("scales stats by level and rewards by tier", func(t *testing.T) {
		e := Roster[4].Spawn(3) // Troll, x1.2

		if e.Health != 72 || e.Attack != 14 || e.Defense != 6 {
			t.Errorf("expected 72/14/6, got %d/%d/%d", e.Health, e.Attack, e.Defense)
		}
		if e.ExpReward != 180 || e.GoldReward != 120 {
			t.Errorf("expected rewards 180/120, got %d/%d", e.ExpReward, e.GoldReward)
		}
	})
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 2},  // goblin, wolf
		{2, 3},  // + skeleton
		{4, 4},  // + orc
		{6, 5},  // + troll
		{9, 5},  // tier 5 does not exist
		{10, 6}, // + dragon
	}
	for _, tt := range tests {
		if got := len(Available(tt.level)); got != tt.want {
			t.Errorf("Available(%d) has %d archetypes, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGenerateEnemy(t *testing.T) {
	t.Run("scripted draws pick archetype then level", func(t *testing.T) {
		e := GenerateEnemy(dice.NewSequence(0.6, 0.99), 1)

		if e.Name != "Wolf" {
			t.Errorf("expected 'Wolf', got '%s'", e.Name)
		}
		if e.Level != 2 {
			t.Errorf("expected level 2, got %d", e.Level)
		}
		if e.Health != 27 || e.Attack != 8 || e.Defense != 1 {
			t.Errorf("expected 27/8/1, got %d/%d/%d", e.Health, e.Attack, e.Defense)
		}
		if e.ExpReward != 30 || e.GoldReward != 20 {
			t.Errorf("expected rewards 30/20, got %d/%d", e.ExpReward, e.GoldReward)
		}
	})

	t.Run("level never drops below 1", func(t *testing.T) {
		e := GenerateEnemy(dice.NewSequence(0, 0), 1)
		if e.Level != 1 {
			t.Errorf("expected level 1, got %d", e.Level)
		}
	})

	t.Run("stays within a level of the player", func(t *testing.T) {
		src := dice.NewSeeded(3)
		for level := 1; level <= 15; level++ {
			for i := 0; i < 30; i++ {
				e := GenerateEnemy(src, level)
				if e.Level < max(1, level-1) || e.Level > level+1 {
					t.Fatalf("player level %d produced enemy level %d", level, e.Level)
				}
				if e.Health != e.MaxHealth || e.Health <= 0 {
					t.Fatalf("enemy spawned with %d/%d health", e.Health, e.MaxHealth)
				}
			}
		}
	})
}

func TestEnemy_TakeDamage(t *testing.T) {
	t.Run("reduces health by damage amount", func(t *testing.T) {
		e := &Enemy{Health: 20, MaxHealth: 20}
		e.TakeDamage(5)
		if e.Health != 15 {
			t.Errorf("expected health 15, got %d", e.Health)
		}
	})

	t.Run("clamps health at 0", func(t *testing.T) {
		e := &Enemy{Health: 5, MaxHealth: 20}
		e.TakeDamage(10)
		if e.Health != 0 {
			t.Errorf("expected health to be clamped at 0, got %d", e.Health)
		}
		if !e.IsDefeated() {
			t.Error("expected enemy to be defeated")
		}
	})

	t.Run("ignores negative damage", func(t *testing.T) {
		e := &Enemy{Health: 20, MaxHealth: 20}
		e.TakeDamage(-3)
		if e.Health != 20 {
			t.Errorf("expected health to remain 20, got %d", e.Health)
		}
	})
}

func TestEnemy_DropsLoot(t *testing.T) {
	tests := []struct {
		chance float64
		want   bool
	}{
		{0, false},
		{0.7, false},
		{0.7001, true},
		{0.99, true},
	}
	for _, tt := range tests {
		if got := (Enemy{DropChance: tt.chance}).DropsLoot(); got != tt.want {
			t.Errorf("DropsLoot() with %v = %v, want %v", tt.chance, got, tt.want)
		}
	}
}

func TestApplyTerrain(t *testing.T) {
	goblin := Roster[0].Spawn(1)

	tests := []struct {
		terrain Terrain
		name    string
		attack  int
		defense int
		health  int
	}{
		{TerrainMountain, "Dragon Goblin", 6, 2, 30},
		{TerrainCrypt, "Undead Goblin", 5, 2, 30},
		{TerrainForest, "Wild Goblin", 5, 2, 33},
		{TerrainPlains, "Goblin", 5, 2, 30},
	}
	for _, tt := range tests {
		t.Run(string(tt.terrain), func(t *testing.T) {
			e := ApplyTerrain(goblin, tt.terrain)
			if e.Name != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, e.Name)
			}
			if e.Attack != tt.attack || e.Defense != tt.defense {
				t.Errorf("expected attack/defense %d/%d, got %d/%d", tt.attack, tt.defense, e.Attack, e.Defense)
			}
			if e.Health != tt.health || e.MaxHealth != tt.health {
				t.Errorf("expected health %d/%d, got %d/%d", tt.health, tt.health, e.Health, e.MaxHealth)
			}
		})
	}

	if goblin.Name != "Goblin" {
		t.Error("ApplyTerrain modified its input")
	}
}

func TestTerrainValid(t *testing.T) {
	for _, tr := range []Terrain{TerrainPlains, TerrainForest, TerrainMountain, TerrainCrypt, TerrainCastle} {
		if !tr.Valid() {
			t.Errorf("%q should be valid", tr)
		}
	}
	for _, tr := range []Terrain{"", "swamp", "Forest"} {
		if tr.Valid() {
			t.Errorf("%q should not be valid", tr)
		}
	}
}
