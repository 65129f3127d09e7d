package psqlbuilder

import "github.com/Masterminds/squirrel"

// Statement builder, закреплённый на $-плейсхолдерах PostgreSQL.
// Все репозитории строят запросы через этот пакет, чтобы не таскать
// PlaceholderFormat по каждому вызову.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT builder
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT builder
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE builder
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE builder
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
