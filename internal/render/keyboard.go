package render

// Button is one inline keyboard button carrying a callback token.
type Button struct {
	Text string
	Data string
}

// Keyboard is rows of buttons.
type Keyboard [][]Button

// Callback tokens routed by the bot.
const (
	CallbackMoveMenu = "menu_move_list"
	CallbackBTCMoves = "move_list_btc"
	CallbackETHMoves = "move_list_eth"
	CallbackMainMenu = "menu_main"
)

// MoveListKeyboard is the navigation keyboard attached to every move
// listing reply, success or failure, so the user always has a way out.
func MoveListKeyboard() Keyboard {
	return Keyboard{
		{
			{Text: "🟠 BTC Moves", Data: CallbackBTCMoves},
			{Text: "🔵 ETH Moves", Data: CallbackETHMoves},
		},
		{
			{Text: "🔙 Back to Main Menu", Data: CallbackMainMenu},
		},
	}
}
