package state

// Screen is the view the game is currently on.
type Screen string

const (
	ScreenStart     Screen = "start"
	ScreenMap       Screen = "map"
	ScreenBattle    Screen = "battle"
	ScreenVictory   Screen = "victory"
	ScreenInventory Screen = "inventory"
	ScreenShop      Screen = "shop"
	ScreenQuest     Screen = "quest"
	ScreenGameOver  Screen = "gameOver"
)

var screens = map[Screen]bool{
	ScreenStart:     true,
	ScreenMap:       true,
	ScreenBattle:    true,
	ScreenVictory:   true,
	ScreenInventory: true,
	ScreenShop:      true,
	ScreenQuest:     true,
	ScreenGameOver:  true,
}

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	return screens[s]
}
