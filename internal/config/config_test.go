package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func testConfigPath(t *testing.T) string {
	t.Helper()

	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.DB.GormEngine == "" {
		t.Error("DB.GormEngine should have a default")
	}

	if cfg.Export.Dir == "" {
		t.Error("Export.Dir should have a default")
	}

	if cfg.Log.AppName == "" {
		t.Error("Log.AppName should not be empty")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid sqlite config",
			config: Config{
				DB: DB{GormEngine: "sqlite", Path: "./gofeds.db"},
			},
			wantErr: false,
		},
		{
			name: "sqlite without path",
			config: Config{
				DB: DB{GormEngine: "sqlite"},
			},
			wantErr: true,
		},
		{
			name: "mysql without database name",
			config: Config{
				DB: DB{GormEngine: "mysql", Host: "localhost"},
			},
			wantErr: true,
		},
		{
			name: "unknown engine",
			config: Config{
				DB: DB{GormEngine: "oracle", Name: "gofeds"},
			},
			wantErr: true,
		},
		{
			name: "empty engine defaults to sqlite",
			config: Config{
				DB: DB{Path: "./gofeds.db"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{DB: DB{Path: "./gofeds.db"}}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.DB.GormEngine != EngineSQLite {
		t.Errorf("GormEngine = %v, want %v", cfg.DB.GormEngine, EngineSQLite)
	}

	if cfg.Export.Dir != DefaultExportDir {
		t.Errorf("Export.Dir = %v, want %v", cfg.Export.Dir, DefaultExportDir)
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"Title":"Test Override","Export":{"Dir":"/tmp/gofeds-export"}}`
	t.Setenv("GOFEDS_CONFIG_JSON", jsonOverride)

	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Export.Dir != "/tmp/gofeds-export" {
		t.Errorf("Export.Dir = %v, want %v", cfg.Export.Dir, "/tmp/gofeds-export")
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		DB:      DB{GormEngine: "sqlite", Path: "./gofeds.db"},
	}

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if tomlStr == "" {
		t.Error("DumpConfig() returned empty string")
	}

	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		DB:      DB{GormEngine: "sqlite", Path: "./gofeds.db"},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if jsonStr == "" {
		t.Error("DumpConfigJSON() returned empty string")
	}

	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}
}
