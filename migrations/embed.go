// Package migrations хранит SQL-миграции схемы, встроенные в бинарник.
package migrations

import "embed"

// FS файлы миграций в формате golang-migrate (NNN_name.up.sql / NNN_name.down.sql)
//
//go:embed *.sql
var FS embed.FS
