package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nmehta/movebot/internal/listing"
)

// Payload is one chat reply: an HTML title line, an HTML body, and the
// inline keyboard shown with it.
type Payload struct {
	Title    string
	Body     string
	Keyboard Keyboard
}

// Text composes the full HTML message text from title and body.
func (p Payload) Text() string {
	switch {
	case p.Title == "":
		return p.Body
	case p.Body == "":
		return p.Title
	default:
		return p.Title + "\n\n" + p.Body
	}
}

// MoveListMenu renders the asset picker shown before a listing runs.
func MoveListMenu() Payload {
	return Payload{
		Title:    "📊 <b>Move Options</b>",
		Body:     "Pick an asset to list its live move contracts:",
		Keyboard: MoveListKeyboard(),
	}
}

// Loading renders the placeholder shown while the flow runs.
func Loading(asset string) Payload {
	return Payload{
		Title:    fmt.Sprintf("🔍 Fetching %s move options...", strings.ToUpper(asset)),
		Keyboard: MoveListKeyboard(),
	}
}

// MoveList renders a terminal flow outcome. Every branch carries the
// navigation keyboard so a failed flow never strands the user.
func MoveList(out listing.Outcome) Payload {
	title, body := moveListText(out)
	return Payload{
		Title:    title,
		Body:     body,
		Keyboard: MoveListKeyboard(),
	}
}

func moveListText(out listing.Outcome) (title, body string) {
	switch out.Kind {
	case listing.OutcomeUnauthorized:
		return "❌ <b>Access Denied</b>", "You are not authorized to use this bot."
	case listing.OutcomeNoCredentials:
		return "❌ <b>No API Credentials</b>", "No API credentials found. Please add your Delta Exchange API credentials first."
	case listing.OutcomeDecryptFailed:
		return "❌ <b>Credential Error</b>", "Failed to decrypt API credentials."
	case listing.OutcomeFetchFailed:
		return "❌ <b>Fetch Error</b>", fmt.Sprintf("Error fetching move options: %s", html.EscapeString(out.ErrMessage))
	case listing.OutcomeEmpty:
		return fmt.Sprintf("📭 <b>%s Move Options</b>", out.Asset), fmt.Sprintf("No live %s move options found.", out.Asset)
	case listing.OutcomeListed:
		var b strings.Builder
		for _, c := range out.Contracts {
			fmt.Fprintf(&b, "🔸 <b>%s</b>\n", html.EscapeString(c.Symbol))
			fmt.Fprintf(&b, "   Strike: $%s\n", html.EscapeString(c.StrikePrice))
			fmt.Fprintf(&b, "   Mark: $%s\n", humanize.FormatFloat("#,###.##", c.MarkPrice))
			fmt.Fprintf(&b, "   Volume: $%s\n\n", humanize.FormatFloat("#,###.", c.Turnover24h))
		}
		title = fmt.Sprintf("%s <b>Live %s Move Options</b>", assetEmoji(out.Asset), out.Asset)
		return title, strings.TrimRight(b.String(), "\n")
	default:
		return "❌ <b>Error</b>", "Something went wrong."
	}
}

func assetEmoji(asset string) string {
	switch asset {
	case "BTC":
		return "🟠"
	case "ETH":
		return "🔵"
	default:
		return "📊"
	}
}
