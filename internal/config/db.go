package config

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	Path       string // database file, sqlite engine only
	GormEngine string // mysql or sqlite
}
