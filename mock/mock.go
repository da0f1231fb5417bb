// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../backoffice_iface.go -destination mock_backoffice/mock_backoffice_iface.go
