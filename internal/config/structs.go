package config

import (
	"github.com/GoFEDS/GoFEDS/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode bool // enable dev mode for development
	Title   string
	DB      DB
	Log     logger.Log
	Export  Export
}

// Export holds the CSV export settings.
type Export struct {
	Dir string // target directory for exported csv files
}
