// Package readstore holds the read side of persistence: fully-populated
// views joined with their item/user associations, so usecases never
// re-attach them by hand.
package readstore

import sq "github.com/Masterminds/squirrel"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
