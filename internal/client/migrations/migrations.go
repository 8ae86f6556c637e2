// Package migrations embeds the goose SQL migrations of the local SQLite
// session database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
