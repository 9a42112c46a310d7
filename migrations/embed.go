// Package migrations embeds the SQL migration files so the server can
// migrate at boot and tests can migrate via the goose programmatic API.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to a goose.Provider instead of relying on a filesystem path
// at runtime.
//
//go:embed *.sql
var FS embed.FS
