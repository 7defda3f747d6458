package generate

import (
	"context"

	"github.com/shopspring/decimal"
)

var invoiceDetailColumns = []string{
	"InvoiceDetailId", "InvoiceNumber", "ProductId", "Quantity", "ExtendedPrice",
}

const maxLineQuantity = 10

func (g *Generator) populateInvoiceDetails(ctx context.Context) error {
	table, err := g.lookupTable(TableInvoiceDetail)
	if err != nil {
		return err
	}
	if err := checkLayout(table, invoiceDetailColumns); err != nil {
		return err
	}

	nextID := 1
	seen := make(map[int]bool, len(g.invoices))

	for _, inv := range g.invoices {
		// a duplicated invoice number already has its line items
		if seen[inv.Number] {
			continue
		}
		seen[inv.Number] = true

		lines := g.uniformInt(StandardLinesPerInvoiceMin, StandardLinesPerInvoiceMax)
		for i := 0; i < lines; i++ {
			product := g.products[g.rng.Intn(len(g.products))]
			price, err := decimal.NewFromString(product[3].(string))
			if err != nil {
				return err
			}

			quantity := 1 + g.rng.Intn(maxLineQuantity)
			g.details = append(g.details, []any{
				nextID,
				inv.Number,
				product[0].(int),
				quantity,
				price.Mul(decimal.NewFromInt(int64(quantity))).StringFixed(2),
			})
			nextID++
		}
	}

	return g.insertRows(ctx, table, g.details)
}
