package quest

import (
	"math"

	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/ident"
	"github.com/jwebster45206/quest-engine/pkg/item"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Quest is a job the player can take on for a reward.
type Quest struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Objective     string       `json:"objective"`
	Difficulty    Difficulty   `json:"difficulty"`
	ExpReward     int          `json:"exp_reward"`
	GoldReward    int          `json:"gold_reward"`
	ItemReward    *item.Item   `json:"item_reward,omitempty"`
	EnemyToDefeat *actor.Enemy `json:"enemy_to_defeat,omitempty"`
	Completed     bool         `json:"completed"`
}

// Template is the fixed text of a quest before rewards and a target are rolled.
type Template struct {
	Name        string
	Description string
	Objective   string
	Difficulty  Difficulty
}

var Templates = []Template{
	{
		Name:        "Pest Control",
		Description: "The local farmers are troubled by creatures destroying their crops. Help them eliminate the threat.",
		Objective:   "Defeat the enemy causing havoc in the farmlands.",
		Difficulty:  DifficultyEasy,
	},
	{
		Name:        "Lost Artifact",
		Description: "A valuable artifact has been stolen by bandits. Track them down and recover it.",
		Objective:   "Defeat the bandit leader and retrieve the artifact.",
		Difficulty:  DifficultyMedium,
	},
	{
		Name:        "Mysterious Cave",
		Description: "Strange noises have been heard from a nearby cave. Investigate and eliminate any threats.",
		Objective:   "Explore the cave and defeat whatever lurks inside.",
		Difficulty:  DifficultyMedium,
	},
	{
		Name:        "Dragon Slayer",
		Description: "A fearsome dragon has been terrorizing the kingdom. You must defeat it to save the land.",
		Objective:   "Slay the dragon and return victorious.",
		Difficulty:  DifficultyHard,
	},
}

type scaling struct {
	exp, gold  float64
	levelBoost int
}

var difficultyScaling = map[Difficulty]scaling{
	DifficultyEasy:   {exp: 1, gold: 1, levelBoost: 0},
	DifficultyMedium: {exp: 1.5, gold: 1.5, levelBoost: 1},
	DifficultyHard:   {exp: 2.5, gold: 2, levelBoost: 2},
}

// Available returns the templates offered to a player of this level.
func Available(playerLevel int) []Template {
	var out []Template
	for _, t := range Templates {
		switch {
		case playerLevel <= 2 && t.Difficulty != DifficultyEasy:
			continue
		case playerLevel <= 5 && t.Difficulty == DifficultyHard:
			continue
		}
		out = append(out, t)
	}
	return out
}

// New rolls a quest for a player of the given level. The template is drawn
// first, then the enemy to defeat.
func New(src dice.Source, playerLevel int) Quest {
	tmpl := dice.Pick(src, Available(playerLevel))
	sc, ok := difficultyScaling[tmpl.Difficulty]
	if !ok {
		sc = difficultyScaling[DifficultyEasy]
	}

	enemy := tmpl.target(actor.GenerateEnemy(src, playerLevel+sc.levelBoost))

	return Quest{
		ID:            ident.New(),
		Name:          tmpl.Name,
		Description:   tmpl.Description,
		Objective:     tmpl.Objective,
		Difficulty:    tmpl.Difficulty,
		ExpReward:     int(math.Floor(50 * float64(playerLevel) * sc.exp)),
		GoldReward:    int(math.Floor(30 * float64(playerLevel) * sc.gold)),
		EnemyToDefeat: &enemy,
	}
}

// target dresses a generated enemy up for the quest.
func (t Template) target(e actor.Enemy) actor.Enemy {
	switch t.Name {
	case "Pest Control":
		e.Name = "Giant " + e.Name
	case "Lost Artifact":
		e.Name = "Bandit " + e.Name
	case "Dragon Slayer":
		e.Name = "Ancient Dragon"
		e.Health = int(math.Floor(float64(e.Health) * 1.5))
		e.MaxHealth = e.Health
		e.Attack = int(math.Floor(float64(e.Attack) * 1.3))
	}
	return e
}
