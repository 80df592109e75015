// Package catalog provides the fixed instrument table that orders are
// validated against and executed from. The table never changes after
// construction, so lookups need no locking.
package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tradedesk/tradedesk/internal/domain"
)

// Catalog is an immutable symbol → instrument mapping.
type Catalog struct {
	instruments map[string]domain.Instrument
	order       []string // symbols in catalog order, for stable listing
}

// New builds a catalog from the given instruments. It returns an error for
// duplicate symbols, empty symbols, or negative reference prices.
func New(instruments []domain.Instrument) (*Catalog, error) {
	c := &Catalog{
		instruments: make(map[string]domain.Instrument, len(instruments)),
		order:       make([]string, 0, len(instruments)),
	}
	for _, inst := range instruments {
		if inst.Symbol == "" {
			return nil, fmt.Errorf("instrument with empty symbol")
		}
		if _, exists := c.instruments[inst.Symbol]; exists {
			return nil, fmt.Errorf("duplicate instrument symbol %s", inst.Symbol)
		}
		if inst.LastTradedPrice.IsNegative() {
			return nil, fmt.Errorf("instrument %s has negative last traded price", inst.Symbol)
		}
		c.instruments[inst.Symbol] = inst
		c.order = append(c.order, inst.Symbol)
	}
	return c, nil
}

// Default returns the built-in instrument table.
func Default() *Catalog {
	c, err := New([]domain.Instrument{
		{Symbol: "AAPL", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.RequireFromString("175.50")},
		{Symbol: "GOOGL", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.RequireFromString("140.25")},
		{Symbol: "MSFT", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.RequireFromString("380.00")},
		{Symbol: "TSLA", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.RequireFromString("245.75")},
		{Symbol: "AMZN", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.RequireFromString("155.30")},
	})
	if err != nil {
		panic(err) // built-in table is statically valid
	}
	return c
}

// catalogFile is the YAML shape for Load. Prices are strings so they parse
// into decimals without passing through float64.
type catalogFile struct {
	Instruments []struct {
		Symbol          string `yaml:"symbol"`
		Exchange        string `yaml:"exchange"`
		Type            string `yaml:"type"`
		LastTradedPrice string `yaml:"last_traded_price"`
	} `yaml:"instruments"`
}

// Load reads an instrument table from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(file.Instruments) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no instruments", path)
	}

	instruments := make([]domain.Instrument, 0, len(file.Instruments))
	for _, entry := range file.Instruments {
		price, err := decimal.NewFromString(entry.LastTradedPrice)
		if err != nil {
			return nil, fmt.Errorf("instrument %s: invalid last_traded_price %q", entry.Symbol, entry.LastTradedPrice)
		}
		instruments = append(instruments, domain.Instrument{
			Symbol:          entry.Symbol,
			Exchange:        entry.Exchange,
			Type:            domain.InstrumentType(entry.Type),
			LastTradedPrice: price,
		})
	}
	return New(instruments)
}

// Get retrieves an instrument by symbol.
func (c *Catalog) Get(symbol string) (domain.Instrument, bool) {
	inst, ok := c.instruments[symbol]
	return inst, ok
}

// List returns all instruments in catalog order.
func (c *Catalog) List() []domain.Instrument {
	result := make([]domain.Instrument, 0, len(c.order))
	for _, symbol := range c.order {
		result = append(result, c.instruments[symbol])
	}
	return result
}

// Len returns the number of instruments in the catalog.
func (c *Catalog) Len() int {
	return len(c.instruments)
}
