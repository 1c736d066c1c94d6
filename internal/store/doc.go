// Package store defines the persistence interfaces and errors for the task
// backend. Implementations live under internal/platform; handlers and
// services depend only on these interfaces so the storage engine stays
// swappable.
package store
