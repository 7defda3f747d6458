package generate

import (
	"github.com/pkg/errors"

	"github.com/GoFEDS/GoFEDS/internal/settings"
)

// Machine names the generator reads from the assembled project tree. These
// match the names the seeder installs for the Revenue business area.
const (
	SettingNumCustomersOptions    = "tbl_customer_setting_num_cust_options"
	SettingNumCustomersCustom     = "tbl_customer_setting_cust_num_custs"
	SettingNumProductsOptions     = "tbl_products_setting_num_product_options"
	SettingNumProductsCustom      = "tbl_product_setting_cust_num_products"
	SettingInvoicesPerCustOptions = "tbl_customer_setting_num_invc_per_cust_options"
	SettingInvoicesPerCustCustom  = "tbl_customer_setting_cust_num_invc_per_cust"

	SettingSalesTaxRate      = "proj_setting_sales_tax_rate"
	SettingTotalDistribution = "stat_dist_total_before_tax"
	SettingNormalMean        = "normal_dist_mean_total_before_tax"
	SettingProductMinPrice   = "tbl_product_setting_min_price"
	SettingProductMaxPrice   = "tbl_product_setting_max_price"
	SettingInvoiceDateRange  = "fld_invoice_date_setting_date_range"
	SettingInvoiceWorkdays   = "fld_invoice_date_setting_workdays"

	AnomalySkipCustomerIDs      = "fld_customer_id_anomaly_skip_keys"
	AnomalyDuplicateCustomerIDs = "fld_customer_id_anomaly_duplicate_keys"
	AnomalySkipInvoiceNumbers   = "fld_invoice_number_anomaly_skip_keys"
	AnomalyDuplicateInvoiceNums = "fld_invoice_number_anomaly_duplicate_keys"
	AnomalyNonWorkdayDates      = "fld_invoice_date_anomaly_nonworkday_dates"
	AnomalyArithmeticErrors     = "fld_invoice_total_anomaly_arithmetic_errors"
)

// Row-count option codes.
const (
	CountOptionStandard = "standard"
	CountOptionCustom   = "custom"
)

// Standard row-count ranges, used when a count option is left at
// "standard". Bounds are inclusive.
const (
	StandardCustomersMin = 20
	StandardCustomersMax = 80

	StandardProductsMin = 20
	StandardProductsMax = 50

	StandardInvoicesPerCustomerMin = 1
	StandardInvoicesPerCustomerMax = 8

	StandardLinesPerInvoiceMin = 1
	StandardLinesPerInvoiceMax = 5
)

type counts struct {
	customers int

	products int

	// invoicesPerCustomer is resolved per customer when the option is
	// standard, so only the custom value is fixed here.
	invoicesPerCustomerCustom int
	invoicesPerCustomerFixed  bool
}

// resolveCounts turns the count settings into concrete numbers. Every
// failure is a configuration problem with the project, so everything wraps
// ErrGeneration.
func (g *Generator) resolveCounts() error {
	var err error

	g.counts.customers, err = g.resolveCount(
		SettingNumCustomersOptions, SettingNumCustomersCustom,
		StandardCustomersMin, StandardCustomersMax)
	if err != nil {
		return err
	}

	g.counts.products, err = g.resolveCount(
		SettingNumProductsOptions, SettingNumProductsCustom,
		StandardProductsMin, StandardProductsMax)
	if err != nil {
		return err
	}

	option, err := g.choiceValue(SettingInvoicesPerCustOptions)
	if err != nil {
		return err
	}
	if option == CountOptionCustom {
		g.counts.invoicesPerCustomerCustom, err = g.integerValue(SettingInvoicesPerCustCustom)
		if err != nil {
			return err
		}
		g.counts.invoicesPerCustomerFixed = true
	}

	return nil
}

// resolveCount picks a row count: uniform inside the standard range, or the
// user's custom integer when the option says so.
func (g *Generator) resolveCount(optionName, customName string, standardMin, standardMax int) (int, error) {
	option, err := g.choiceValue(optionName)
	if err != nil {
		return 0, err
	}

	switch option {
	case CountOptionStandard:
		return g.uniformInt(standardMin, standardMax), nil
	case CountOptionCustom:
		return g.integerValue(customName)
	default:
		return 0, errors.Wrapf(ErrGeneration,
			"setting %q has unusable row count option %q", optionName, option)
	}
}

// invoicesForCustomer returns the invoice count for one customer, rolling a
// fresh standard count per customer unless the user fixed a custom value.
func (g *Generator) invoicesForCustomer() int {
	if g.counts.invoicesPerCustomerFixed {
		return g.counts.invoicesPerCustomerCustom
	}
	return g.uniformInt(StandardInvoicesPerCustomerMin, StandardInvoicesPerCustomerMax)
}

func (g *Generator) uniformInt(low, high int) int {
	return low + g.rng.Intn(high-low+1)
}

func (g *Generator) choiceValue(name string) (string, error) {
	setting, ok := g.tree.Lookup(name)
	if !ok {
		return "", errors.Wrapf(ErrGeneration, "generation requires setting %q", name)
	}

	choice, ok := setting.(*settings.ChoiceSetting)
	if !ok {
		return "", errors.Wrapf(ErrGeneration, "setting %q is not a choice setting", name)
	}

	return choice.Value(), nil
}

func (g *Generator) integerValue(name string) (int, error) {
	setting, ok := g.tree.Lookup(name)
	if !ok {
		return 0, errors.Wrapf(ErrGeneration, "generation requires setting %q", name)
	}

	integer, ok := setting.(*settings.IntegerSetting)
	if !ok {
		return 0, errors.Wrapf(ErrGeneration, "setting %q is not an integer setting", name)
	}

	n, err := integer.Value()
	if err != nil {
		return 0, errors.Wrapf(ErrGeneration, "setting %q has no usable value", name)
	}

	return n, nil
}

// anomalyOn reports whether the named anomaly switch exists and is turned
// on. A missing switch is simply off.
func (g *Generator) anomalyOn(name string) bool {
	setting, ok := g.tree.Lookup(name)
	if !ok {
		return false
	}

	boolean, ok := setting.(*settings.BooleanSetting)
	if !ok {
		return false
	}

	return boolean.Value()
}
