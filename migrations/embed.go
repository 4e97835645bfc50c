// Package migrations embeds the SQL migration files so the goose
// programmatic API can apply them at server startup and in tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Embedding means the schema ships inside the binary; no migration
// files need to exist on disk at runtime.
//
//go:embed *.sql
var FS embed.FS
