// Package psql provides squirrel builders preconfigured for PostgreSQL
// dollar placeholders. All repository SQL goes through these so placeholder
// style never drifts between files.
package psql

import sq "github.com/Masterminds/squirrel"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Select(columns ...string) sq.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(table string) sq.InsertBuilder {
	return builder.Insert(table)
}

func Update(table string) sq.UpdateBuilder {
	return builder.Update(table)
}

func Delete(table string) sq.DeleteBuilder {
	return builder.Delete(table)
}
