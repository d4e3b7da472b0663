package migrations

import "embed"

// Migrations holds the SQL schema migrations compiled into the binary.
//
//go:embed *.sql
var Migrations embed.FS
