package item

import "github.com/jwebster45206/quest-engine/pkg/dice"

const shopConsumables = 5

// GenerateShopInventory stocks a shop: 2-3 each of weapons, armor and
// accessories, five consumables, and one bonus rare (80%) or epic (20%)
// piece of equipment appended last.
func GenerateShopInventory(src dice.Source, playerLevel int) []Item {
	var stock []Item
	for _, t := range Types {
		count := shopConsumables
		if t != TypeConsumable {
			count = dice.Between(src, 2, 4)
		}
		for i := 0; i < count; i++ {
			stock = append(stock, Generate(src, t, playerLevel))
		}
	}

	bonusType := dice.Pick(src, EquipmentTypes)
	bonusRarity := RarityRare
	if src.Float64() >= 0.8 {
		bonusRarity = RarityEpic
	}
	return append(stock, GenerateWithRarity(src, bonusType, playerLevel, bonusRarity))
}
