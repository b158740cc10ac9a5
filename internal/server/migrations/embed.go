// Package migrations carries the embedded goose SQL migrations applied by
// the repository manager at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
