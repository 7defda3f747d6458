package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/models"
)

// Seed installs the built-in setting definitions and the Revenue business
// area. It only runs against an empty database; a database that already
// has a business area is left alone.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BusinessArea{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to inspect database before seeding")
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding empty database")

	return db.Transaction(func(tx *gorm.DB) error {
		for _, group := range []struct {
			name string
			rows []any
		}{
			{"setting definitions", settingDefinitions()},
			{"business areas", businessAreas()},
			{"notional tables", notionalTables()},
			{"field specs", fieldSpecs()},
			{"business area settings", businessAreaSettings()},
			{"notional table settings", notionalTableSettings()},
			{"field spec settings", fieldSpecSettings()},
		} {
			for _, row := range group.rows {
				if err := tx.Create(row).Error; err != nil {
					return errors.Wrapf(err, "failed to seed %s", group.name)
				}
			}
		}

		return nil
	})
}

// Definition IDs for the built-in setting library.
const (
	defRowCountSource = iota + 1
	defCustomRowCount
	defSalesTaxRate
	defTotalDistribution
	defDistributionMean
	defDateRange
	defWorkingDays
	defMinPrice
	defMaxPrice
	defAnomalySwitch
)

func settingDefinitions() []any {
	return []any{
		&models.SettingDefinition{
			ID: defRowCountSource, Title: "Row count source",
			Description:  "Whether the row count comes from the standard range or a custom value.",
			SettingGroup: "basic", SettingType: "choice",
			Params: `{"choices":[["standard","Standard"],["custom","Custom"]],"value":"standard"}`,
		},
		&models.SettingDefinition{
			ID: defCustomRowCount, Title: "Custom row count",
			Description:  "Exact number of rows to generate.",
			SettingGroup: "basic", SettingType: "integer",
			Params: `{"value":"20","min":1,"max":10000}`,
		},
		&models.SettingDefinition{
			ID: defSalesTaxRate, Title: "Sales tax rate",
			Description:  "Tax rate applied to every invoice.",
			SettingGroup: "basic", SettingType: "currency",
			Params: `{"value":"0.06","min":"0"}`,
		},
		&models.SettingDefinition{
			ID: defTotalDistribution, Title: "Amount distribution",
			Description:  "Statistical distribution the invoice totals before tax are drawn from.",
			SettingGroup: "basic", SettingType: "choice",
			Params: `{"choices":[["normal","Normal"],["skewed","Skewed"]],"value":"normal"}`,
		},
		&models.SettingDefinition{
			ID: defDistributionMean, Title: "Distribution mean",
			Description:  "Mean amount for the distribution.",
			SettingGroup: "basic", SettingType: "currency",
			Params: `{"value":"800","min":"1"}`,
		},
		&models.SettingDefinition{
			ID: defDateRange, Title: "Date range",
			SettingGroup: "basic", SettingType: "daterange",
			Params: `{"startdate":"2000/1/1","enddate":"2000/12/31"}`,
		},
		&models.SettingDefinition{
			ID: defWorkingDays, Title: "Working days",
			Description:  "Days of the week business happens on.",
			SettingGroup: "basic", SettingType: "choice",
			Params: `{"choices":[["weekdays","Monday to Friday"],["monsat","Monday to Saturday"],["allweek","All week"]],"value":"weekdays"}`,
		},
		&models.SettingDefinition{
			ID: defMinPrice, Title: "Minimum price",
			SettingGroup: "basic", SettingType: "currency",
			Params: `{"value":"5.00","min":"0.01"}`,
		},
		&models.SettingDefinition{
			ID: defMaxPrice, Title: "Maximum price",
			SettingGroup: "basic", SettingType: "currency",
			Params: `{"value":"500.00","min":"0.01"}`,
		},
		&models.SettingDefinition{
			ID: defAnomalySwitch, Title: "Anomaly switch",
			Description:  "Plant this anomaly in the generated data.",
			SettingGroup: "anomaly", SettingType: "boolean",
			Params: `{"value":"false"}`,
		},
	}
}

func businessAreas() []any {
	return []any{
		&models.BusinessArea{
			ID: 1, Title: "Revenue",
			Description: "A small wholesaler sells products to customers and invoices them.",
		},
	}
}

// Notional table IDs of the Revenue area.
const (
	tblCustomer = iota + 1
	tblProduct
	tblInvoice
	tblInvoiceDetail
)

func notionalTables() []any {
	return []any{
		&models.NotionalTable{ID: tblCustomer, BusinessAreaID: 1, Title: "Customer",
			Description: "One row per customer account.", DisplayOrder: 1},
		&models.NotionalTable{ID: tblProduct, BusinessAreaID: 1, Title: "Product",
			Description: "The product catalogue.", DisplayOrder: 2},
		&models.NotionalTable{ID: tblInvoice, BusinessAreaID: 1, Title: "Invoice",
			Description: "One row per invoice sent to a customer.", DisplayOrder: 3},
		&models.NotionalTable{ID: tblInvoiceDetail, BusinessAreaID: 1, Title: "InvoiceDetail",
			Description: "Line items for each invoice.", DisplayOrder: 4},
	}
}

// Field spec IDs the settings below attach to.
const (
	fldCustomerID = iota + 1
	fldCustomerName
	fldCustomerStreet
	fldCustomerTown
	fldCustomerZip
	fldCustomerPhone
	fldCustomerEmail

	fldProductID
	fldProductName
	fldProductDescription
	fldProductUnitPrice

	fldInvoiceNumber
	fldInvoiceCustomerID
	fldInvoiceDate
	fldInvoiceTotalBeforeTax
	fldInvoiceSalesTax
	fldInvoiceTotal
	fldInvoicePaymentType

	fldDetailID
	fldDetailInvoiceNumber
	fldDetailProductID
	fldDetailQuantity
	fldDetailExtendedPrice
)

func fieldSpecs() []any {
	specs := []struct {
		id    uint64
		table uint64
		title string
		ftype string
	}{
		{fldCustomerID, tblCustomer, "CustomerId", "pk"},
		{fldCustomerName, tblCustomer, "CName", "text"},
		{fldCustomerStreet, tblCustomer, "CStreetAddress", "text"},
		{fldCustomerTown, tblCustomer, "CTown", "text"},
		{fldCustomerZip, tblCustomer, "CZip", "zip"},
		{fldCustomerPhone, tblCustomer, "CPhone", "phone"},
		{fldCustomerEmail, tblCustomer, "CEmail", "email"},

		{fldProductID, tblProduct, "ProductId", "pk"},
		{fldProductName, tblProduct, "ProductName", "text"},
		{fldProductDescription, tblProduct, "ProductDescription", "text"},
		{fldProductUnitPrice, tblProduct, "UnitPrice", "currency"},

		{fldInvoiceNumber, tblInvoice, "InvoiceNumber", "pk"},
		{fldInvoiceCustomerID, tblInvoice, "CustomerId", "fk"},
		{fldInvoiceDate, tblInvoice, "InvoiceDate", "date"},
		{fldInvoiceTotalBeforeTax, tblInvoice, "TotalBeforeTax", "currency"},
		{fldInvoiceSalesTax, tblInvoice, "SalesTax", "currency"},
		{fldInvoiceTotal, tblInvoice, "Total", "currency"},
		{fldInvoicePaymentType, tblInvoice, "PaymentType", "choice"},

		{fldDetailID, tblInvoiceDetail, "InvoiceDetailId", "pk"},
		{fldDetailInvoiceNumber, tblInvoiceDetail, "InvoiceNumber", "fk"},
		{fldDetailProductID, tblInvoiceDetail, "ProductId", "fk"},
		{fldDetailQuantity, tblInvoiceDetail, "Quantity", "int"},
		{fldDetailExtendedPrice, tblInvoiceDetail, "ExtendedPrice", "currency"},
	}

	order := make(map[uint64]int, 4)

	rows := make([]any, 0, len(specs))
	for _, spec := range specs {
		order[spec.table]++
		rows = append(rows, &models.FieldSpec{
			ID:              spec.id,
			NotionalTableID: spec.table,
			Title:           spec.title,
			FieldType:       spec.ftype,
			FieldOrder:      order[spec.table],
		})
	}

	return rows
}

func businessAreaSettings() []any {
	return []any{
		&models.BusinessAreaSetting{
			ID: 1, BusinessAreaID: 1, SettingDefinitionID: defSalesTaxRate,
			MachineName: "proj_setting_sales_tax_rate", DisplayOrder: 1,
			Params: "{}",
		},
		&models.BusinessAreaSetting{
			ID: 2, BusinessAreaID: 1, SettingDefinitionID: defTotalDistribution,
			MachineName: "stat_dist_total_before_tax", DisplayOrder: 2,
			Params: `{"title":"Invoice amount distribution"}`,
		},
		&models.BusinessAreaSetting{
			ID: 3, BusinessAreaID: 1, SettingDefinitionID: defDistributionMean,
			MachineName: "normal_dist_mean_total_before_tax", DisplayOrder: 3,
			Params: `{"title":"Mean invoice amount before tax","visibility":{"determiner":"stat_dist_total_before_tax","value":"normal"}}`,
		},
	}
}

func notionalTableSettings() []any {
	return []any{
		&models.NotionalTableSetting{
			ID: 1, NotionalTableID: tblCustomer, SettingDefinitionID: defRowCountSource,
			MachineName: "tbl_customer_setting_num_cust_options", DisplayOrder: 1,
			Params: `{"title":"Number of customers"}`,
		},
		&models.NotionalTableSetting{
			ID: 2, NotionalTableID: tblCustomer, SettingDefinitionID: defCustomRowCount,
			MachineName: "tbl_customer_setting_cust_num_custs", DisplayOrder: 2,
			Params: `{"title":"Custom number of customers","visibility":{"determiner":"tbl_customer_setting_num_cust_options","value":"custom"}}`,
		},
		&models.NotionalTableSetting{
			ID: 3, NotionalTableID: tblCustomer, SettingDefinitionID: defRowCountSource,
			MachineName: "tbl_customer_setting_num_invc_per_cust_options", DisplayOrder: 3,
			Params: `{"title":"Invoices per customer"}`,
		},
		&models.NotionalTableSetting{
			ID: 4, NotionalTableID: tblCustomer, SettingDefinitionID: defCustomRowCount,
			MachineName: "tbl_customer_setting_cust_num_invc_per_cust", DisplayOrder: 4,
			Params: `{"title":"Custom invoices per customer","value":"5","max":50,"visibility":{"determiner":"tbl_customer_setting_num_invc_per_cust_options","value":"custom"}}`,
		},

		&models.NotionalTableSetting{
			ID: 5, NotionalTableID: tblProduct, SettingDefinitionID: defRowCountSource,
			MachineName: "tbl_products_setting_num_product_options", DisplayOrder: 1,
			Params: `{"title":"Number of products"}`,
		},
		&models.NotionalTableSetting{
			ID: 6, NotionalTableID: tblProduct, SettingDefinitionID: defCustomRowCount,
			MachineName: "tbl_product_setting_cust_num_products", DisplayOrder: 2,
			Params: `{"title":"Custom number of products","value":"30","visibility":{"determiner":"tbl_products_setting_num_product_options","value":"custom"}}`,
		},
		&models.NotionalTableSetting{
			ID: 7, NotionalTableID: tblProduct, SettingDefinitionID: defMinPrice,
			MachineName: "tbl_product_setting_min_price", DisplayOrder: 3,
			Params: `{"title":"Minimum unit price"}`,
		},
		&models.NotionalTableSetting{
			ID: 8, NotionalTableID: tblProduct, SettingDefinitionID: defMaxPrice,
			MachineName: "tbl_product_setting_max_price", DisplayOrder: 4,
			Params: `{"title":"Maximum unit price"}`,
		},
	}
}

func fieldSpecSettings() []any {
	return []any{
		&models.FieldSpecSetting{
			ID: 1, FieldSpecID: fldCustomerID, SettingDefinitionID: defAnomalySwitch,
			MachineName: "fld_customer_id_anomaly_skip_keys", DisplayOrder: 1,
			Params: `{"title":"Skip some customer ids"}`,
		},
		&models.FieldSpecSetting{
			ID: 2, FieldSpecID: fldCustomerID, SettingDefinitionID: defAnomalySwitch,
			MachineName: "fld_customer_id_anomaly_duplicate_keys", DisplayOrder: 2,
			Params: `{"title":"Duplicate some customer ids"}`,
		},

		&models.FieldSpecSetting{
			ID: 3, FieldSpecID: fldInvoiceNumber, SettingDefinitionID: defAnomalySwitch,
			MachineName: "fld_invoice_number_anomaly_skip_keys", DisplayOrder: 1,
			Params: `{"title":"Skip some invoice numbers"}`,
		},
		&models.FieldSpecSetting{
			ID: 4, FieldSpecID: fldInvoiceNumber, SettingDefinitionID: defAnomalySwitch,
			MachineName: "fld_invoice_number_anomaly_duplicate_keys", DisplayOrder: 2,
			Params: `{"title":"Duplicate some invoice numbers"}`,
		},

		&models.FieldSpecSetting{
			ID: 5, FieldSpecID: fldInvoiceDate, SettingDefinitionID: defDateRange,
			MachineName: "fld_invoice_date_setting_date_range", DisplayOrder: 1,
			Params: `{"title":"Invoice date range"}`,
		},
		&models.FieldSpecSetting{
			ID: 6, FieldSpecID: fldInvoiceDate, SettingDefinitionID: defWorkingDays,
			MachineName: "fld_invoice_date_setting_workdays", DisplayOrder: 2,
			Params: `{"title":"Invoice working days"}`,
		},
		&models.FieldSpecSetting{
			ID: 7, FieldSpecID: fldInvoiceDate, SettingDefinitionID: defAnomalySwitch,
			MachineName: "fld_invoice_date_anomaly_nonworkday_dates", DisplayOrder: 3,
			Params: `{"title":"Some invoices on non-working days"}`,
		},

		&models.FieldSpecSetting{
			ID: 8, FieldSpecID: fldInvoiceTotal, SettingDefinitionID: defAnomalySwitch,
			MachineName: "fld_invoice_total_anomaly_arithmetic_errors", DisplayOrder: 1,
			Params: `{"title":"Arithmetic errors in invoice totals"}`,
		},
	}
}
