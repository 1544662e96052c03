package state

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/item"
	"github.com/jwebster45206/quest-engine/pkg/quest"
)

const summaryWidth = 72

// title is called per use since a Caser must not be shared between
// goroutines.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// DescribePlayer renders the player's sheet as plain text.
func DescribePlayer(p actor.Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, level %d\n", p.Name, p.Level)
	fmt.Fprintf(&b, "Health: %d/%d\n", p.Health, p.MaxHealth)
	fmt.Fprintf(&b, "Attack: %d  Defense: %d\n", p.Attack, p.Defense)
	fmt.Fprintf(&b, "Experience: %d/%d\n", p.Experience, p.ExperienceToNextLevel)
	fmt.Fprintf(&b, "Gold: %d\n", p.Gold)
	for _, slot := range item.EquipmentTypes {
		name := "(empty)"
		if it := p.Equipment.Slot(slot); it != nil {
			name = it.Name
		}
		fmt.Fprintf(&b, "%s: %s\n", title(string(slot)), name)
	}
	return b.String()
}

// DescribeInventory lists items one per line.
func DescribeInventory(items []item.Item) string {
	if len(items) == 0 {
		return "Your inventory is empty.\n"
	}
	var b strings.Builder
	for _, it := range items {
		line := fmt.Sprintf("- %s (%s %s)", it.Name, title(string(it.Rarity)), it.Type)
		if it.Description != "" {
			line += ": " + it.Description
		}
		b.WriteString(wordwrap.String(line, summaryWidth))
		b.WriteString("\n")
	}
	return b.String()
}

// DescribeQuests lists the quests on offer, marking the current one.
func DescribeQuests(quests []quest.Quest, current *quest.Quest) string {
	if len(quests) == 0 && current == nil {
		return "No quests available.\n"
	}
	var b strings.Builder
	if current != nil {
		b.WriteString(describeQuest("* ", *current))
	}
	for _, q := range quests {
		if current != nil && q.ID == current.ID {
			continue
		}
		b.WriteString(describeQuest("- ", q))
	}
	return b.String()
}

func describeQuest(marker string, q quest.Quest) string {
	head := fmt.Sprintf("%s%s [%s] %d XP, %d gold", marker, q.Name, title(string(q.Difficulty)), q.ExpReward, q.GoldReward)
	return wordwrap.String(head, summaryWidth) + "\n" +
		wordwrap.String("  "+q.Objective, summaryWidth) + "\n"
}

// Summary renders the whole game as plain text.
func Summary(gs GameState) string {
	var b strings.Builder
	b.WriteString(DescribePlayer(gs.Player))
	if gs.CurrentEnemy != nil {
		fmt.Fprintf(&b, "\nFighting: %s (%d/%d)\n", gs.CurrentEnemy.Name, gs.CurrentEnemy.Health, gs.CurrentEnemy.MaxHealth)
	}
	b.WriteString("\nInventory\n")
	b.WriteString(DescribeInventory(gs.Inventory))
	b.WriteString("\nQuests\n")
	b.WriteString(DescribeQuests(gs.Quests, gs.CurrentQuest))
	if len(gs.BattleLog) > 0 {
		b.WriteString("\nBattle log\n")
		for _, line := range gs.BattleLog {
			b.WriteString(wordwrap.String(line, summaryWidth))
			b.WriteString("\n")
		}
	}
	if gs.GameOver {
		b.WriteString("\nGame over.\n")
	}
	return b.String()
}
