package item

import (
	"slices"
	"testing"

	"github.com/jwebster45206/quest-engine/pkg/dice"
)

func TestRollRarity_Boundaries(t *testing.T) {
	tests := []struct {
		roll float64
		want Rarity
	}{
		{0, RarityCommon},
		{49.99, RarityCommon},
		{50, RarityUncommon},
		{79.99, RarityUncommon},
		{80, RarityRare},
		{94.99, RarityRare},
		{95, RarityEpic},
		{98.99, RarityEpic},
		{99, RarityLegendary},
	}
	for _, tt := range tests {
		if got := RollRarity(tt.roll); got != tt.want {
			t.Errorf("RollRarity(%v) = %s, want %s", tt.roll, got, tt.want)
		}
	}
}

func TestGenerate_RarityFromFirstDraw(t *testing.T) {
	tests := []struct {
		draw float64
		want Rarity
	}{
		{0, RarityCommon},
		{0.4999, RarityCommon},
		{0.5, RarityUncommon},
		{0.7999, RarityUncommon},
		{0.8, RarityRare},
		{0.9499, RarityRare},
		{0.95, RarityEpic},
		{0.9899, RarityEpic},
		{0.99, RarityLegendary},
	}
	for _, tt := range tests {
		it := Generate(dice.NewSequence(tt.draw, 0.5), TypeWeapon, 1)
		if it.Rarity != tt.want {
			t.Errorf("draw %v: rarity = %s, want %s", tt.draw, it.Rarity, tt.want)
		}
	}
}

func TestGenerateRandom_TypeThenRarity(t *testing.T) {
	// type, rarity, then the stat and name rolls
	src := dice.NewSequence(0.0, 0.99, 0.5)
	it := GenerateRandom(src, 1)

	if it.Type != TypeWeapon {
		t.Errorf("Type = %s, want %s", it.Type, TypeWeapon)
	}
	if it.Rarity != RarityLegendary {
		t.Errorf("Rarity = %s, want %s", it.Rarity, RarityLegendary)
	}
}

func TestGenerate_Weapon(t *testing.T) {
	// rarity, attack, crit, prefix, word
	src := dice.NewSequence(0.0, 0.5, 0.5, 0.0, 0.0)
	it := Generate(src, TypeWeapon, 1)

	if it.Name != "Sharp Sword" {
		t.Errorf("Name = %q, want %q", it.Name, "Sharp Sword")
	}
	if it.Stats.Attack != 1 {
		t.Errorf("Attack = %d, want 1", it.Stats.Attack)
	}
	if it.Stats.CritChance != 2 {
		t.Errorf("CritChance = %d, want 2", it.Stats.CritChance)
	}
	if it.Price != 10 || it.Value != 8 {
		t.Errorf("Price/Value = %d/%d, want 10/8", it.Price, it.Value)
	}
	if it.Effect != EffectNone {
		t.Errorf("Effect = %q, want none", it.Effect)
	}
	if it.Description != "Attack +1, Crit Chance +2%" {
		t.Errorf("Description = %q", it.Description)
	}
	if it.ID == "" {
		t.Error("expected an id")
	}
	if src.Draws() != 5 {
		t.Errorf("Draws() = %d, want 5", src.Draws())
	}
}

func TestGenerateWithRarity_Armor(t *testing.T) {
	// defense, health, prefix, word; no rarity draw
	src := dice.NewSequence(0.5, 0.5, 0.0, 0.0)
	it := GenerateWithRarity(src, TypeArmor, 3, RarityRare)

	if it.Rarity != RarityRare {
		t.Errorf("Rarity = %s, want rare", it.Rarity)
	}
	if it.Stats.Defense != 5 {
		t.Errorf("Defense = %d, want 5", it.Stats.Defense)
	}
	if it.Stats.Health != 25 {
		t.Errorf("Health = %d, want 25", it.Stats.Health)
	}
	if it.Price != 120 || it.Value != 96 {
		t.Errorf("Price/Value = %d/%d, want 120/96", it.Price, it.Value)
	}
	if it.Name != "Sturdy Plate" {
		t.Errorf("Name = %q, want %q", it.Name, "Sturdy Plate")
	}
	if it.Description != "Defense +5, Health +25" {
		t.Errorf("Description = %q", it.Description)
	}
}

func TestGenerate_Consumable(t *testing.T) {
	src := dice.NewSequence(0.0, 0.5, 0.4)
	it := Generate(src, TypeConsumable, 1)

	if it.Name != "Health Elixir" {
		t.Errorf("Name = %q, want %q", it.Name, "Health Elixir")
	}
	if it.Effect != EffectHeal {
		t.Errorf("Effect = %q, want heal", it.Effect)
	}
	if it.Stats.HealAmount != 12 {
		t.Errorf("HealAmount = %d, want 12", it.Stats.HealAmount)
	}
	if !it.CanHeal() {
		t.Error("expected consumable to heal")
	}
	if it.Description != "Heals 12 HP" {
		t.Errorf("Description = %q", it.Description)
	}
}

func TestGenerate_StatRanges(t *testing.T) {
	src := dice.NewSeeded(7)
	for level := 1; level <= 12; level++ {
		for _, typ := range Types {
			for i := 0; i < 50; i++ {
				it := Generate(src, typ, level)
				mod := rarityModifiers[it.Rarity]
				top := max(2, int(float64(level)*mod.max))
				switch typ {
				case TypeWeapon:
					if it.Stats.Attack < 1 || it.Stats.Attack > top {
						t.Fatalf("level %d %s weapon attack %d out of range", level, it.Rarity, it.Stats.Attack)
					}
				case TypeArmor:
					if it.Stats.Defense < 1 || it.Stats.Health < 5 {
						t.Fatalf("level %d armor stats too low: %+v", level, it.Stats)
					}
				case TypeConsumable:
					if !it.CanHeal() {
						t.Fatalf("level %d consumable cannot heal: %+v", level, it)
					}
				}
				if it.Value != it.Price*8/10 {
					t.Fatalf("value %d is not 80%% of price %d", it.Value, it.Price)
				}
			}
		}
	}
}

func TestDescribe_Order(t *testing.T) {
	s := Stats{Attack: 1, Defense: 2, Health: 3, CritChance: 4, HealAmount: 5}
	want := "Attack +1, Defense +2, Health +3, Crit Chance +4%, Heals 5 HP"
	if got := Describe(s); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
	if got := Describe(Stats{}); got != "" {
		t.Errorf("Describe(empty) = %q, want empty", got)
	}
}

func TestGenerateShopInventory(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		stock := GenerateShopInventory(dice.NewSeeded(seed), 2)

		if len(stock) < 12 || len(stock) > 15 {
			t.Fatalf("seed %d: %d items, want 12-15", seed, len(stock))
		}

		counts := make(map[Type]int)
		for _, it := range stock[:len(stock)-1] {
			counts[it.Type]++
		}
		if counts[TypeConsumable] != 5 {
			t.Errorf("seed %d: %d consumables, want 5", seed, counts[TypeConsumable])
		}
		for _, typ := range EquipmentTypes {
			if counts[typ] < 2 || counts[typ] > 3 {
				t.Errorf("seed %d: %d %s items, want 2-3", seed, counts[typ], typ)
			}
		}

		order := make([]int, 0, len(stock)-1)
		for _, it := range stock[:len(stock)-1] {
			order = append(order, slices.Index(Types, it.Type))
		}
		if !slices.IsSorted(order) {
			t.Errorf("seed %d: stock not grouped by type: %v", seed, order)
		}

		bonus := stock[len(stock)-1]
		if !bonus.Type.IsEquipment() {
			t.Errorf("seed %d: bonus item is %s", seed, bonus.Type)
		}
		if bonus.Rarity != RarityRare && bonus.Rarity != RarityEpic {
			t.Errorf("seed %d: bonus rarity %s", seed, bonus.Rarity)
		}
	}
}

func TestSliceHelpers(t *testing.T) {
	a := Item{ID: "a"}
	b := Item{ID: "b"}
	items := []Item{a, b}

	without := Without(items, "a")
	if len(without) != 1 || without[0].ID != "b" {
		t.Errorf("Without = %v", without)
	}
	if len(items) != 2 || items[0].ID != "a" {
		t.Error("Without modified its input")
	}

	appended := Append(items, Item{ID: "c"})
	if len(appended) != 3 || len(items) != 2 {
		t.Errorf("Append lengths = %d/%d", len(appended), len(items))
	}
}
