// pkg/db/migrations/migrations.go
package migrations

import "embed"

// Migrations holds the embedded SQL schema migrations.
//
//go:embed *.sql
var Migrations embed.FS
