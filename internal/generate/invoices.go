package generate

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/GoFEDS/GoFEDS/internal/settings"
)

var invoiceColumns = []string{
	"InvoiceNumber", "CustomerId", "InvoiceDate", "TotalBeforeTax", "SalesTax", "Total", "PaymentType",
}

// paymentTypes an invoice settles with, drawn uniformly.
var paymentTypes = []string{"cash", "credit"}

// Distribution codes for the total-before-tax amount.
const (
	DistributionNormal = "normal"
	DistributionSkewed = "skewed"
)

var defaultNormalMean = decimal.NewFromInt(800)

// invoiceRow keeps the typed invoice values so tests can check the money
// arithmetic without re-parsing the exported rows.
type invoiceRow struct {
	Number         int
	CustomerID     int
	Date           time.Time
	TotalBeforeTax decimal.Decimal
	SalesTax       decimal.Decimal
	Total          decimal.Decimal
	PaymentType    string
}

func (g *Generator) populateInvoices(ctx context.Context) error {
	table, err := g.lookupTable(TableInvoice)
	if err != nil {
		return err
	}
	if err := checkLayout(table, invoiceColumns); err != nil {
		return err
	}

	taxRate, err := g.salesTaxRate()
	if err != nil {
		return err
	}

	distribution, err := g.choiceValue(SettingTotalDistribution)
	if err != nil {
		return err
	}
	if distribution != DistributionNormal && distribution != DistributionSkewed {
		return errors.Wrapf(ErrGeneration,
			"setting %q has unknown distribution %q", SettingTotalDistribution, distribution)
	}

	mean := g.currencyOr(SettingNormalMean, defaultNormalMean)

	start, end := g.invoiceDateRange()
	workdayPolicy := g.workdayPolicy()
	nonWorkdays := g.anomalyOn(AnomalyNonWorkdayDates)

	keys := newKeySequence(g.rng,
		g.anomalyOn(AnomalySkipInvoiceNumbers),
		g.anomalyOn(AnomalyDuplicateInvoiceNums))
	arithmeticErrors := g.anomalyOn(AnomalyArithmeticErrors)

	for _, customerID := range g.customerIDs() {
		for i := 0; i < g.invoicesForCustomer(); i++ {
			row := invoiceRow{
				Number:         keys.Next(),
				CustomerID:     customerID,
				Date:           g.invoiceDate(start, end, workdayPolicy, nonWorkdays),
				TotalBeforeTax: g.drawAmount(distribution, mean),
				PaymentType:    pick(g.rng, paymentTypes),
			}
			row.SalesTax = row.TotalBeforeTax.Mul(taxRate).Round(2)
			row.Total = row.TotalBeforeTax.Add(row.SalesTax).Round(2)
			if arithmeticErrors && g.rng.Float64() < arithmeticErrProbability {
				row.Total = perturbAmount(g.rng, row.Total)
			}
			g.invoices = append(g.invoices, row)
		}
	}

	rows := make([][]any, 0, len(g.invoices))
	for _, inv := range g.invoices {
		rows = append(rows, []any{
			inv.Number,
			inv.CustomerID,
			settings.FormatDate(inv.Date),
			inv.TotalBeforeTax.StringFixed(2),
			inv.SalesTax.StringFixed(2),
			inv.Total.StringFixed(2),
			inv.PaymentType,
		})
	}

	return g.insertRows(ctx, table, rows)
}

// customerIDs returns the generated customer keys in order, duplicates and
// all, so invoice foreign keys always land on a row that exists.
func (g *Generator) customerIDs() []int {
	ids := make([]int, 0, len(g.customers))
	for _, row := range g.customers {
		ids = append(ids, row[0].(int))
	}
	return ids
}

func (g *Generator) salesTaxRate() (decimal.Decimal, error) {
	setting, ok := g.tree.Lookup(SettingSalesTaxRate)
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrGeneration,
			"generation requires setting %q", SettingSalesTaxRate)
	}
	currency, ok := setting.(*settings.CurrencySetting)
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrGeneration,
			"setting %q is not a currency setting", SettingSalesTaxRate)
	}
	rate, err := currency.Value()
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrGeneration,
			"setting %q has no usable value", SettingSalesTaxRate)
	}
	return rate, nil
}

// invoiceDateRange returns the configured range, or the minimum range when
// the invoice date field carries no range setting.
func (g *Generator) invoiceDateRange() (start, end time.Time) {
	setting, ok := g.tree.Lookup(SettingInvoiceDateRange)
	if !ok {
		return settings.MinStartDate, settings.MinEndDate
	}
	dateRange, ok := setting.(*settings.DateRangeSetting)
	if !ok {
		return settings.MinStartDate, settings.MinEndDate
	}
	return dateRange.Start(), dateRange.End()
}

func (g *Generator) workdayPolicy() string {
	setting, ok := g.tree.Lookup(SettingInvoiceWorkdays)
	if !ok {
		return WorkdaysWeekdays
	}
	choice, ok := setting.(*settings.ChoiceSetting)
	if !ok {
		return WorkdaysWeekdays
	}
	return choice.Value()
}

// invoiceDate draws a uniform date in the range, then rolls it onto a
// working day. The non-workday anomaly occasionally skips the roll.
func (g *Generator) invoiceDate(start, end time.Time, policy string, nonWorkdays bool) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}

	date := start.AddDate(0, 0, g.rng.Intn(days+1))
	if nonWorkdays && g.rng.Float64() < nonWorkdayProbability {
		return date
	}
	return rollToWorkday(date, policy)
}

// drawAmount samples a total-before-tax amount. Normal draws cluster
// around the mean; skewed draws ride a lognormal tail to the right. Both
// are floored at one unit so no invoice comes out free or negative.
func (g *Generator) drawAmount(distribution string, mean decimal.Decimal) decimal.Decimal {
	meanF, _ := mean.Float64()

	var amount float64
	switch distribution {
	case DistributionSkewed:
		amount = meanF * math.Exp(g.rng.NormFloat64()*0.75)
	default:
		amount = meanF + g.rng.NormFloat64()*meanF/5
	}

	if amount < 1 {
		amount = 1
	}
	return decimal.NewFromFloat(amount).Round(2)
}
