package usersetting

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.UserSetting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedUserSettings inserts test data into the database.
func seedUserSettings(t *testing.T, db *gorm.DB, stored []models.UserSetting) {
	t.Helper()
	for _, row := range stored {
		err := db.Create(&row).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		projectID     uint64
		machineName   string
		seedData      []models.UserSetting
		expectedError error
		expectedValue string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			projectID:     1,
			machineName:   "x1",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty machine name",
			dbParam:       db,
			projectID:     1,
			expectedError: ErrMachineNameEmpty,
		},
		{
			name:          "not found",
			dbParam:       db,
			projectID:     1,
			machineName:   "nonexistent",
			expectedError: ErrUserSettingNotFound,
		},
		{
			name:        "successful get",
			dbParam:     db,
			projectID:   1,
			machineName: "tbl_customer_setting_cust_num_custs",
			seedData: []models.UserSetting{
				{ProjectID: 1, MachineName: "tbl_customer_setting_cust_num_custs", Value: "25"},
			},
			expectedValue: "25",
		},
		{
			name:        "scoped by project",
			dbParam:     db,
			projectID:   2,
			machineName: "tbl_customer_setting_cust_num_custs",
			seedData: []models.UserSetting{
				{ProjectID: 1, MachineName: "tbl_customer_setting_cust_num_custs", Value: "25"},
			},
			expectedError: ErrUserSettingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM user_settings")
			}

			if tc.seedData != nil {
				seedUserSettings(t, tc.dbParam, tc.seedData)
			}

			stored, err := Get(tc.dbParam, tc.projectID, tc.machineName)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, stored)
			} else {
				require.NoError(t, err)
				require.NotNil(t, stored)
				assert.Equal(t, tc.expectedValue, stored.Value)
			}
		})
	}
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		machineName   string
		value         string
		seedData      []models.UserSetting
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			machineName:   "x1",
			value:         "5",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty machine name",
			dbParam:       db,
			value:         "5",
			expectedError: ErrMachineNameEmpty,
		},
		{
			name:        "create new value",
			dbParam:     db,
			machineName: "x1",
			value:       "5",
		},
		{
			name:        "update existing value",
			dbParam:     db,
			machineName: "x1",
			value:       "9",
			seedData: []models.UserSetting{
				{ProjectID: 1, MachineName: "x1", Value: "5"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM user_settings")
			}

			if tc.seedData != nil {
				seedUserSettings(t, tc.dbParam, tc.seedData)
			}

			stored, err := Set(tc.dbParam, 1, tc.machineName, tc.value)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, stored)
			} else {
				require.NoError(t, err)
				require.NotNil(t, stored)
				assert.Equal(t, tc.value, stored.Value)

				var fromDB models.UserSetting
				err = tc.dbParam.Where("project_id = ? AND machine_name = ?", 1, tc.machineName).First(&fromDB).Error
				require.NoError(t, err)
				assert.Equal(t, tc.value, fromDB.Value)
			}
		})
	}
}

func TestForProjectAndDelete(t *testing.T) {
	db := setupTestDB(t)

	seedUserSettings(t, db, []models.UserSetting{
		{ProjectID: 1, MachineName: "x1", Value: "5"},
		{ProjectID: 1, MachineName: "x2", Value: "true"},
		{ProjectID: 2, MachineName: "x1", Value: "7"},
	})

	stored, err := ForProject(db, 1)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	err = Delete(db, 1, "x1")
	require.NoError(t, err)

	err = Delete(db, 1, "x1")
	require.ErrorIs(t, err, ErrUserSettingNotFound)

	err = DeleteForProject(db, 1)
	require.NoError(t, err)

	stored, err = ForProject(db, 1)
	require.NoError(t, err)
	assert.Empty(t, stored)

	// other projects untouched
	stored, err = ForProject(db, 2)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
