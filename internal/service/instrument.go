package service

import (
	"github.com/tradedesk/tradedesk/internal/catalog"
	"github.com/tradedesk/tradedesk/internal/domain"
)

// InstrumentService serves reads from the fixed instrument catalog.
type InstrumentService struct {
	catalog *catalog.Catalog
}

// NewInstrumentService creates a new InstrumentService.
func NewInstrumentService(cat *catalog.Catalog) *InstrumentService {
	return &InstrumentService{catalog: cat}
}

// ListInstruments returns all instruments in catalog order.
func (s *InstrumentService) ListInstruments() []domain.Instrument {
	return s.catalog.List()
}

// GetInstrument retrieves an instrument by symbol. It returns
// domain.ErrInstrumentNotFound if the symbol is not in the catalog.
func (s *InstrumentService) GetInstrument(symbol string) (domain.Instrument, error) {
	instrument, ok := s.catalog.Get(symbol)
	if !ok {
		return domain.Instrument{}, domain.ErrInstrumentNotFound
	}
	return instrument, nil
}
