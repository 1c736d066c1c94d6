// Package mocks provides hand-written test doubles for the service and
// store interfaces used by handler and middleware tests.
package mocks
