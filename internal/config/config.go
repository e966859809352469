package config

import (
	"log"
	"os"
)

type Config struct {
	Port                 string
	DBDSN                string
	LogFile              string
	GeoAPIURL            string
	GeoAPIKey            string
	EnforceCartOwnership bool
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "grentify.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./grentify.log"
	}
	geoURL := os.Getenv("GEO_API_URL")
	if geoURL == "" {
		geoURL = "https://api.ipgeolocation.io/ipgeo"
	}

	cfg := Config{
		Port:                 port,
		DBDSN:                dsn,
		LogFile:              logFile,
		GeoAPIURL:            geoURL,
		GeoAPIKey:            os.Getenv("GEO_API_KEY"),
		EnforceCartOwnership: os.Getenv("ENFORCE_CART_OWNERSHIP") != "false",
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s ENFORCE_CART_OWNERSHIP=%v",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.EnforceCartOwnership)
	return cfg
}
