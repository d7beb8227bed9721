// Package agenthub holds assets shared by the whole module, such as the
// embedded database migrations.
package agenthub

import "embed"

// Migrations contains the goose SQL migrations. The same files are applied to
// SQLite and PostgreSQL, so they stick to the common subset of both dialects.
//
//go:embed migrations/*.sql
var Migrations embed.FS
