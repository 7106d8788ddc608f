// Package migrations встраивает SQL-миграции в бинарник,
// чтобы схема приводилась в актуальное состояние при старте.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
