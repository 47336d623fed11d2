// Package migrations embeds the schema in golang-migrate file format.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
