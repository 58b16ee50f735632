//go:build cgo_sqlite

// Build with: CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/quotegen
package sqlite

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	driverName    = "sqlite3"
	driverType    = "cgo"
	driverPackage = "github.com/mattn/go-sqlite3"
)
