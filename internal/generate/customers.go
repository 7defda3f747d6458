package generate

import (
	"context"

	"github.com/pkg/errors"

	"github.com/GoFEDS/GoFEDS/internal/project"
)

// customerColumns is the column layout populateCustomers produces, in
// order. The notional table's field specs must match it.
var customerColumns = []string{
	"CustomerId", "CName", "CStreetAddress", "CTown", "CZip", "CPhone", "CEmail",
}

func checkLayout(table *project.Table, want []string) error {
	if len(table.Fields) != len(want) {
		return errors.Wrapf(ErrGeneration,
			"table %q has %d fields, want %d", table.Title, len(table.Fields), len(want))
	}
	for i, field := range table.Fields {
		if field.Title != want[i] {
			return errors.Wrapf(ErrGeneration,
				"table %q field %d is %q, want %q", table.Title, i, field.Title, want[i])
		}
	}
	return nil
}

func (g *Generator) populateCustomers(ctx context.Context) error {
	table, err := g.lookupTable(TableCustomer)
	if err != nil {
		return err
	}
	if err := checkLayout(table, customerColumns); err != nil {
		return err
	}

	keys := newKeySequence(g.rng,
		g.anomalyOn(AnomalySkipCustomerIDs),
		g.anomalyOn(AnomalyDuplicateCustomerIDs))

	g.customers = make([][]any, 0, g.counts.customers)
	for i := 0; i < g.counts.customers; i++ {
		first, last := personName(g.rng)
		g.customers = append(g.customers, []any{
			keys.Next(),
			first + " " + last,
			streetAddress(g.rng),
			pick(g.rng, townNames),
			pick(g.rng, zipCodes),
			phoneNumber(g.rng),
			emailAddress(g.rng, first, last),
		})
	}

	return g.insertRows(ctx, table, g.customers)
}
