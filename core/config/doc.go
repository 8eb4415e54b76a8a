// Package config loads application configuration from the environment.
//
// Configuration is split into partial structs owned by the packages they
// configure (server, provider, storage, database, logger) and aggregated
// here. Defaults come from `default:` struct tags, discovered by reflection
// and registered in Viper so AutomaticEnv can override any key, e.g.
// PROVIDER_BASE_URL or DATABASE_PASSWORD. A local .env file, when present,
// is overloaded first.
package config
