package project

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/models"
	"github.com/GoFEDS/GoFEDS/internal/settings"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.SettingDefinition{},
		&models.BusinessArea{},
		&models.NotionalTable{},
		&models.FieldSpec{},
		&models.BusinessAreaSetting{},
		&models.NotionalTableSetting{},
		&models.FieldSpecSetting{},
		&models.Project{},
		&models.UserSetting{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedFixture builds a small two-table business area with settings at every
// level and one project on top of it.
func seedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	create := func(value any) {
		require.NoError(t, db.Create(value).Error)
	}

	create(&models.SettingDefinition{
		ID: 1, Title: "Row count source", SettingGroup: "basic", SettingType: "choice",
		Params: `{"choices":[["standard","Standard"],["custom","Custom"]],"value":"standard"}`,
	})
	create(&models.SettingDefinition{
		ID: 2, Title: "Custom row count", SettingGroup: "basic", SettingType: "integer",
		Params: `{"value":"20","min":1}`,
	})
	create(&models.SettingDefinition{
		ID: 3, Title: "Sales tax rate", SettingGroup: "basic", SettingType: "currency",
		Params: `{"value":"0.06"}`,
	})
	create(&models.SettingDefinition{
		ID: 4, Title: "Skip some keys", SettingGroup: "anomaly", SettingType: "boolean",
		Params: `{"value":"false"}`,
	})

	create(&models.BusinessArea{ID: 1, Title: "Revenue", Description: "Sell products to customers."})
	create(&models.Project{ID: 1, Title: "Audit exercise", Slug: "audit-exercise", BusinessAreaID: 1})

	create(&models.NotionalTable{ID: 1, BusinessAreaID: 1, Title: "Customer", DisplayOrder: 1})
	create(&models.NotionalTable{ID: 2, BusinessAreaID: 1, Title: "Invoice", DisplayOrder: 2})

	create(&models.FieldSpec{ID: 1, NotionalTableID: 1, Title: "CustomerId", FieldType: "pk", FieldOrder: 1})
	create(&models.FieldSpec{ID: 2, NotionalTableID: 1, Title: "CName", FieldType: "text", FieldOrder: 2})
	create(&models.FieldSpec{ID: 3, NotionalTableID: 2, Title: "InvoiceNumber", FieldType: "pk", FieldOrder: 1})

	create(&models.BusinessAreaSetting{
		ID: 1, BusinessAreaID: 1, SettingDefinitionID: 3,
		MachineName: "proj_setting_sales_tax_rate", DisplayOrder: 1, Params: "{}",
	})

	create(&models.NotionalTableSetting{
		ID: 1, NotionalTableID: 1, SettingDefinitionID: 1,
		MachineName: "tbl_customer_setting_num_cust_options", DisplayOrder: 1, Params: "{}",
	})
	create(&models.NotionalTableSetting{
		ID: 2, NotionalTableID: 1, SettingDefinitionID: 2,
		MachineName: "tbl_customer_setting_cust_num_custs", DisplayOrder: 2,
		Params: `{"visibility":{"determiner":"tbl_customer_setting_num_cust_options","value":"custom"}}`,
	})

	create(&models.FieldSpecSetting{
		ID: 1, FieldSpecID: 3, SettingDefinitionID: 4,
		MachineName: "fld_invoice_number_anomaly_skip_keys", DisplayOrder: 1,
		Params: `{"title":"Skip some invoice numbers"}`,
	})
}

func TestAssemble(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	tree, err := Assemble(db, 1)
	require.NoError(t, err)
	require.NotNil(t, tree)

	assert.Equal(t, "Audit exercise", tree.Title)
	assert.Equal(t, "Revenue", tree.BusinessAreaTitle)

	require.Len(t, tree.Settings, 1)
	assert.Equal(t, "proj_setting_sales_tax_rate", tree.Settings[0].MachineName())

	require.Len(t, tree.Tables, 2)
	assert.Equal(t, "Customer", tree.Tables[0].Title)
	assert.Equal(t, "Invoice", tree.Tables[1].Title)

	customer := tree.Tables[0]
	require.Len(t, customer.Settings, 2)
	assert.Equal(t, "tbl_customer_setting_num_cust_options", customer.Settings[0].MachineName())
	assert.Equal(t, "tbl_customer_setting_cust_num_custs", customer.Settings[1].MachineName())
	require.Len(t, customer.Fields, 2)
	assert.Equal(t, FieldPrimaryKey, customer.Fields[0].FieldType)

	invoice := tree.Tables[1]
	require.Len(t, invoice.Fields, 1)
	require.Len(t, invoice.Fields[0].Settings, 1)
	assert.Equal(t, "Skip some invoice numbers", invoice.Fields[0].Settings[0].Title())
	assert.Equal(t, settings.GroupAnomaly, invoice.Fields[0].Settings[0].Group())

	// every machine name in the tree resolves through the tree's registry
	for _, name := range []string{
		"proj_setting_sales_tax_rate",
		"tbl_customer_setting_num_cust_options",
		"tbl_customer_setting_cust_num_custs",
		"fld_invoice_number_anomaly_skip_keys",
	} {
		_, ok := tree.Lookup(name)
		assert.True(t, ok, "machine name %q not registered", name)
	}

	// the custom count is hidden while the choice is standard
	assert.False(t, tree.Registry.Visible("tbl_customer_setting_cust_num_custs"))
}

func TestAssembleNoPartialTrees(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	// an override referencing a missing base definition poisons the assembly
	require.NoError(t, db.Create(&models.NotionalTableSetting{
		ID: 3, NotionalTableID: 2, SettingDefinitionID: 999,
		MachineName: "tbl_invoice_broken", DisplayOrder: 1, Params: "{}",
	}).Error)

	tree, err := Assemble(db, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, settings.ErrConfiguration)
	assert.Nil(t, tree)
}

func TestAssembleDuplicateMachineNameAcrossLevels(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	require.NoError(t, db.Create(&models.FieldSpecSetting{
		ID: 2, FieldSpecID: 1, SettingDefinitionID: 4,
		MachineName: "proj_setting_sales_tax_rate2", DisplayOrder: 1, Params: "{}",
	}).Error)
	// same machine name as the business-area setting
	require.NoError(t, db.Exec(
		"UPDATE field_spec_settings SET machine_name = ? WHERE id = 2",
		"proj_setting_sales_tax_rate",
	).Error)

	_, err := Assemble(db, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, settings.ErrConfiguration)
}

func TestAssembleUnknownProject(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	_, err := Assemble(db, 42)
	require.Error(t, err)
}

func TestMergeUserValues(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	require.NoError(t, db.Create(&models.UserSetting{
		ProjectID: 1, MachineName: "tbl_customer_setting_cust_num_custs", Value: "7",
	}).Error)
	require.NoError(t, db.Create(&models.UserSetting{
		ProjectID: 1, MachineName: "tbl_customer_setting_num_cust_options", Value: "custom",
	}).Error)
	// stale reference from an older settings schema
	require.NoError(t, db.Create(&models.UserSetting{
		ProjectID: 1, MachineName: "tbl_customer_setting_retired", Value: "anything",
	}).Error)

	tree, err := Assemble(db, 1)
	require.NoError(t, err)

	require.NoError(t, MergeUserValues(db, tree))

	custom, ok := tree.Lookup("tbl_customer_setting_cust_num_custs")
	require.True(t, ok)
	value, err := custom.(*settings.IntegerSetting).Value()
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	// the user switched the choice, so the custom count became visible
	assert.True(t, tree.Registry.Visible("tbl_customer_setting_cust_num_custs"))
}

func TestMergeUserValuesRejectsBadValue(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	require.NoError(t, db.Create(&models.UserSetting{
		ProjectID: 1, MachineName: "tbl_customer_setting_num_cust_options", Value: "bespoke",
	}).Error)

	tree, err := Assemble(db, 1)
	require.NoError(t, err)

	err = MergeUserValues(db, tree)
	require.Error(t, err)
	require.ErrorIs(t, err, settings.ErrValidation)
}

func TestMergeUserValuesKeepsDefaultsWithoutStoredValues(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	tree, err := Assemble(db, 1)
	require.NoError(t, err)
	require.NoError(t, MergeUserValues(db, tree))

	choice, ok := tree.Lookup("tbl_customer_setting_num_cust_options")
	require.True(t, ok)
	assert.Equal(t, "standard", choice.(*settings.ChoiceSetting).Value())
}
