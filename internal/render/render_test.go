package render

import (
	"strings"
	"testing"

	"github.com/nmehta/movebot/internal/listing"
	"github.com/nmehta/movebot/internal/model"
)

func TestMoveList_Outcomes(t *testing.T) {
	tests := []struct {
		name string
		out  listing.Outcome
		want []string
	}{
		{
			name: "unauthorized",
			out:  listing.Outcome{Kind: listing.OutcomeUnauthorized, Asset: "BTC"},
			want: []string{"Access Denied", "not authorized"},
		},
		{
			name: "no credentials",
			out:  listing.Outcome{Kind: listing.OutcomeNoCredentials, Asset: "BTC"},
			want: []string{"No API credentials found"},
		},
		{
			name: "decrypt failed",
			out:  listing.Outcome{Kind: listing.OutcomeDecryptFailed, Asset: "BTC"},
			want: []string{"Failed to decrypt"},
		},
		{
			name: "fetch failed carries truncated message",
			out:  listing.Outcome{Kind: listing.OutcomeFetchFailed, Asset: "BTC", ErrMessage: "rate limited"},
			want: []string{"Error fetching move options", "rate limited"},
		},
		{
			name: "empty names the asset",
			out:  listing.Outcome{Kind: listing.OutcomeEmpty, Asset: "ETH"},
			want: []string{"No live ETH move options"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MoveList(tt.out)
			if p.Title == "" {
				t.Error("Title is empty")
			}
			text := p.Text()
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Text() = %q, want substring %q", text, want)
				}
			}
			if len(p.Keyboard) == 0 {
				t.Error("keyboard missing; every outcome must carry navigation")
			}
		})
	}
}

func TestMoveList_Listed(t *testing.T) {
	out := listing.Outcome{
		Kind:  listing.OutcomeListed,
		Asset: "BTC",
		Contracts: []model.MoveContract{
			{Symbol: "BTC-MOVE-1", StrikePrice: "50000", MarkPrice: 120.5, Turnover24h: 30000},
		},
	}

	p := MoveList(out)

	if p.Title != "🟠 <b>Live BTC Move Options</b>" {
		t.Errorf("Title = %q", p.Title)
	}
	for _, want := range []string{
		"<b>BTC-MOVE-1</b>",
		"Strike: $50000",
		"Mark: $120.50",
		"Volume: $30,000",
	} {
		if !strings.Contains(p.Body, want) {
			t.Errorf("Body = %q, want substring %q", p.Body, want)
		}
	}
	if !strings.HasPrefix(p.Text(), p.Title+"\n\n") {
		t.Errorf("Text() = %q, want title then body", p.Text())
	}
}

func TestMoveList_ListedOrder(t *testing.T) {
	out := listing.Outcome{
		Kind:  listing.OutcomeListed,
		Asset: "ETH",
		Contracts: []model.MoveContract{
			{Symbol: "ETH-MOVE-A"},
			{Symbol: "ETH-MOVE-B"},
		},
	}

	p := MoveList(out)
	if strings.Index(p.Body, "ETH-MOVE-A") > strings.Index(p.Body, "ETH-MOVE-B") {
		t.Errorf("contracts rendered out of order:\n%s", p.Body)
	}
	if p.Title != "🔵 <b>Live ETH Move Options</b>" {
		t.Errorf("Title = %q, want ETH header", p.Title)
	}
}

func TestMoveList_EscapesHTML(t *testing.T) {
	out := listing.Outcome{
		Kind:       listing.OutcomeFetchFailed,
		Asset:      "BTC",
		ErrMessage: `<script>alert("x")</script>`,
	}

	if body := MoveList(out).Body; strings.Contains(body, "<script>") {
		t.Errorf("unescaped HTML in body: %q", body)
	}
}

func TestPayloadText(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    string
	}{
		{"title and body", Payload{Title: "T", Body: "B"}, "T\n\nB"},
		{"title only", Payload{Title: "T"}, "T"},
		{"body only", Payload{Body: "B"}, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payload.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveListKeyboard(t *testing.T) {
	kb := MoveListKeyboard()
	if len(kb) != 2 {
		t.Fatalf("rows = %d, want 2", len(kb))
	}
	if kb[0][0].Data != CallbackBTCMoves || kb[0][1].Data != CallbackETHMoves {
		t.Errorf("asset row = %+v", kb[0])
	}
	if kb[1][0].Data != CallbackMainMenu {
		t.Errorf("back row = %+v", kb[1])
	}
}

func TestMoveListMenuAndLoading(t *testing.T) {
	if p := MoveListMenu(); len(p.Keyboard) == 0 || !strings.Contains(p.Text(), "Move Options") {
		t.Errorf("menu payload = %+v", p)
	}
	if p := Loading("btc"); !strings.Contains(p.Text(), "BTC") {
		t.Errorf("loading payload = %+v", p)
	}
}
