// Package migrations embeds the SQL schema for db:migrate. The SQL is
// written for MySQL; sqlite deployments rely on gorm AutoMigrate instead.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
