// Package domain defines the core business entities of the task backend:
// users and the tasks they own. Entities validate themselves; persistence
// and transport concerns live elsewhere.
package domain
