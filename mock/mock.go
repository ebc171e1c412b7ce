// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../manager_iface.go -destination mock_consolesession/mock_manager_iface.go
//go:generate mockgen -source ../permissions/permissions_iface.go -destination mock_permissions/mock_permissions_iface.go
//go:generate mockgen -source ../tokenstore/tokenstore_iface.go -destination mock_tokenstore/mock_tokenstore_iface.go
//go:generate mockgen -source ../console/console_iface.go -destination mock_console/mock_console_iface.go
