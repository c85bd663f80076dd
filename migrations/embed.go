// Package migrations embeds the SQL schema migrations for the database backends.
package migrations

import "embed"

// FS holds one sub-directory per dialect (sqlite, postgres) of NNN_name.sql files.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
