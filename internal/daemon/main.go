package daemon

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/config"
	"github.com/GoFEDS/GoFEDS/internal/db/dsn"
	"github.com/GoFEDS/GoFEDS/internal/db/models"
	"github.com/GoFEDS/GoFEDS/internal/logger/adapter/gormlogger"
)

// Daemon holds the opened database the commands operate on.
type Daemon struct {
	DB *gorm.DB
}

// New opens the configured database, migrates the settings schema and
// seeds the built-in business areas.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.SettingDefinition{},
		&models.BusinessArea{},
		&models.NotionalTable{},
		&models.FieldSpec{},
		&models.BusinessAreaSetting{},
		&models.NotionalTableSetting{},
		&models.FieldSpecSetting{},
		&models.Project{},
		&models.UserSetting{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	if err = Seed(db); err != nil {
		return nil, err
	}

	return &Daemon{DB: db}, nil
}

func open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	default:
		dialector = sqlite.Open(cfg.DB.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.New()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.DB.GormEngine)
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("database connected")

	return db, nil
}
