package listing

import (
	"strings"

	"github.com/nmehta/movebot/internal/delta"
	"github.com/nmehta/movebot/internal/model"
)

// DisplayLimit caps how many contracts one listing shows.
const DisplayLimit = 10

// Filter selects live contracts whose symbol contains the uppercase
// asset ticker, keeping at most limit entries in the exchange's response
// order. No further ranking is applied; the exchange's native order is
// the display order.
func Filter(products []delta.Product, asset string, limit int) []model.MoveContract {
	asset = strings.ToUpper(asset)

	var contracts []model.MoveContract
	for _, p := range products {
		if p.State != delta.StateLive {
			continue
		}
		if !strings.Contains(p.Symbol, asset) {
			continue
		}

		contracts = append(contracts, model.MoveContract{
			Symbol:      p.Symbol,
			StrikePrice: string(p.StrikePrice),
			MarkPrice:   float64(p.MarkPrice),
			Turnover24h: float64(p.Turnover24h),
		})
		if len(contracts) == limit {
			break
		}
	}

	return contracts
}
