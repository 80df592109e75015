package domain

import "github.com/shopspring/decimal"

// InstrumentType classifies a catalog entry. Only stocks exist today.
type InstrumentType string

const (
	InstrumentTypeStock InstrumentType = "STOCK"
)

// Instrument is a tradable symbol with a static reference price. The
// catalog it comes from is fixed for the lifetime of the process, so
// instruments are treated as immutable values.
type Instrument struct {
	Symbol          string
	Exchange        string
	Type            InstrumentType
	LastTradedPrice decimal.Decimal
}
