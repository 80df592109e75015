package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tradedesk/tradedesk/internal/domain"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}

	aapl, ok := c.Get("AAPL")
	if !ok {
		t.Fatal("expected AAPL in default catalog")
	}
	if aapl.Exchange != "NASDAQ" {
		t.Errorf("AAPL exchange = %s, want NASDAQ", aapl.Exchange)
	}
	if aapl.Type != domain.InstrumentTypeStock {
		t.Errorf("AAPL type = %s, want STOCK", aapl.Type)
	}
	if !aapl.LastTradedPrice.Equal(decimal.RequireFromString("175.50")) {
		t.Errorf("AAPL last traded price = %s, want 175.50", aapl.LastTradedPrice)
	}
}

func TestCatalog_Get_NotFound(t *testing.T) {
	c := Default()

	_, ok := c.Get("ZZZZ")
	if ok {
		t.Error("Get(ZZZZ) should not find an instrument")
	}
}

func TestCatalog_List_StableOrder(t *testing.T) {
	c := Default()

	want := []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN"}
	for i := 0; i < 10; i++ {
		list := c.List()
		if len(list) != len(want) {
			t.Fatalf("List() returned %d instruments, want %d", len(list), len(want))
		}
		for j, inst := range list {
			if inst.Symbol != want[j] {
				t.Fatalf("List()[%d] = %s, want %s", j, inst.Symbol, want[j])
			}
		}
	}
}

func TestNew_DuplicateSymbol(t *testing.T) {
	_, err := New([]domain.Instrument{
		{Symbol: "AAPL", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.NewFromInt(100)},
		{Symbol: "AAPL", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.NewFromInt(200)},
	})
	if err == nil {
		t.Fatal("expected error for duplicate symbol")
	}
}

func TestNew_EmptySymbol(t *testing.T) {
	_, err := New([]domain.Instrument{
		{Symbol: "", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.NewFromInt(100)},
	})
	if err == nil {
		t.Fatal("expected error for empty symbol")
	}
}

func TestNew_NegativePrice(t *testing.T) {
	_, err := New([]domain.Instrument{
		{Symbol: "AAPL", Exchange: "NASDAQ", Type: domain.InstrumentTypeStock, LastTradedPrice: decimal.NewFromInt(-1)},
	})
	if err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `instruments:
  - symbol: NVDA
    exchange: NASDAQ
    type: STOCK
    last_traded_price: "880.10"
  - symbol: IBM
    exchange: NYSE
    type: STOCK
    last_traded_price: "182.45"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	nvda, ok := c.Get("NVDA")
	if !ok {
		t.Fatal("expected NVDA in loaded catalog")
	}
	if !nvda.LastTradedPrice.Equal(decimal.RequireFromString("880.10")) {
		t.Errorf("NVDA price = %s, want 880.10", nvda.LastTradedPrice)
	}

	ibm, ok := c.Get("IBM")
	if !ok {
		t.Fatal("expected IBM in loaded catalog")
	}
	if ibm.Exchange != "NYSE" {
		t.Errorf("IBM exchange = %s, want NYSE", ibm.Exchange)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("instruments: [not: valid: yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_InvalidPrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `instruments:
  - symbol: NVDA
    exchange: NASDAQ
    type: STOCK
    last_traded_price: "not-a-number"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid price")
	}
}

func TestLoad_EmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("instruments: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
