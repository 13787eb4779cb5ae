// Package migrations embeds the SQLite schema files and applies any that
// have not been applied yet, in filename order.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
