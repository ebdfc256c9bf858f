package schema

import (
	"time"

	"github.com/mehrbod2002/brokerdb/internal/models"
)

type seedSymbol struct {
	symbol, companyName, sector string
}

var seedSymbols = []seedSymbol{
	{"AAPL", "Apple Inc.", "Technology"},
	{"GOOGL", "Alphabet Inc.", "Technology"},
	{"MSFT", "Microsoft Corporation", "Technology"},
	{"TSLA", "Tesla, Inc.", "Automotive"},
	{"AMZN", "Amazon.com, Inc.", "E-commerce"},
}

const seedExchange = "NASDAQ"

// SeedSymbols returns the initial symbol rows, each created at now.
func SeedSymbols(now time.Time) []models.Symbol {
	out := make([]models.Symbol, 0, len(seedSymbols))
	for _, s := range seedSymbols {
		out = append(out, models.Symbol{
			Symbol:      s.symbol,
			CompanyName: s.companyName,
			Exchange:    seedExchange,
			Sector:      s.sector,
			Active:      true,
			CreatedAt:   now,
		})
	}
	return out
}

func SeedTickers() []string {
	out := make([]string, len(seedSymbols))
	for i, s := range seedSymbols {
		out[i] = s.symbol
	}
	return out
}
