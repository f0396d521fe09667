package repository

// Storage keys
const (
	KeyHistory     = "errandHistory"
	KeyLatestRoute = "latestOptimizedRoute"
)

// Schema is the kv_store table shared by the SQL stores.
const Schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`
