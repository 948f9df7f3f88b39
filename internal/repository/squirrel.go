// Package repository holds the Postgres data access layer. Queries are
// built with Squirrel and executed through pgx; write methods take an
// explicit transaction so services control commit boundaries.
package repository

import sq "github.com/Masterminds/squirrel"

// psql builds statements with $n placeholders for Postgres.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
