package generate

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GoFEDS/GoFEDS/internal/settings"
)

var productColumns = []string{
	"ProductId", "ProductName", "ProductDescription", "UnitPrice",
}

// Price bounds used when the product table carries no price settings.
var (
	defaultMinPrice = decimal.NewFromInt(5)
	defaultMaxPrice = decimal.NewFromInt(500)
)

func (g *Generator) populateProducts(ctx context.Context) error {
	table, err := g.lookupTable(TableProduct)
	if err != nil {
		return err
	}
	if err := checkLayout(table, productColumns); err != nil {
		return err
	}

	minPrice := g.currencyOr(SettingProductMinPrice, defaultMinPrice)
	maxPrice := g.currencyOr(SettingProductMaxPrice, defaultMaxPrice)
	if maxPrice.LessThan(minPrice) {
		minPrice, maxPrice = maxPrice, minPrice
	}

	g.products = make([][]any, 0, g.counts.products)
	for i := 0; i < g.counts.products; i++ {
		name := productName(g.rng)
		g.products = append(g.products, []any{
			i + 1,
			name,
			fmt.Sprintf("%s, model %d", name, 100+g.rng.Intn(900)),
			g.randomAmount(minPrice, maxPrice).StringFixed(2),
		})
	}

	return g.insertRows(ctx, table, g.products)
}

// currencyOr reads a currency setting, falling back when the setting is
// absent or has no stored value.
func (g *Generator) currencyOr(name string, fallback decimal.Decimal) decimal.Decimal {
	setting, ok := g.tree.Lookup(name)
	if !ok {
		return fallback
	}
	currency, ok := setting.(*settings.CurrencySetting)
	if !ok {
		return fallback
	}
	value, err := currency.Value()
	if err != nil {
		return fallback
	}
	return value
}

// randomAmount draws a uniform money amount in [low, high], rounded to
// cents.
func (g *Generator) randomAmount(low, high decimal.Decimal) decimal.Decimal {
	lowF, _ := low.Float64()
	highF, _ := high.Float64()
	return decimal.NewFromFloat(lowF + g.rng.Float64()*(highF-lowF)).Round(2)
}
