// Package config loads typed configuration structs from environment
// variables using `env` struct tags, with a best-effort .env file load on
// first use.
package config
