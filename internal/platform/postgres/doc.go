// Package postgres implements the store interfaces on PostgreSQL via
// database/sql with the pgx driver. All statements are single-row
// operations; atomicity is delegated to the database.
package postgres
