// Package repository holds the write side of persistence. SQL is built with
// squirrel against the pgx pool; read views live in the readstore package.
package repository

import sq "github.com/Masterminds/squirrel"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
