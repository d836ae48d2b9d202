package config

import "os"

// Config carries the environment driven settings of the gateway. Defaults
// match a local docker-compose style setup: the db-vendo REST API on :3001
// and the Angular front-end on :4200.
type Config struct {
	DBVendoBaseURL  string
	FrontendOrigin  string
	MongoConnection string
	MongoDatabase   string
	StationsPath    string
}

func Load() Config {
	return Config{
		DBVendoBaseURL:  getEnv("REFUNDREBEL_DBVENDO_URL", "http://localhost:3001"),
		FrontendOrigin:  getEnv("REFUNDREBEL_FRONTEND_URL", "http://localhost:4200"),
		MongoConnection: getEnv("REFUNDREBEL_MONGODB_CONNECTION", "mongodb://localhost:27017/"),
		MongoDatabase:   getEnv("REFUNDREBEL_MONGODB_DATABASE", "appdb"),
		StationsPath:    getEnv("REFUNDREBEL_STATIONS_PATH", "data/stations.json"),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
