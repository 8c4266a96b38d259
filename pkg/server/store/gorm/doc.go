// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// The ACL queries are raw SQL: the joins, DISTINCT, and array_agg that give
// the access graph its dedup semantics are easier to read and verify as SQL
// than as chained GORM clauses. Identity stores use regular GORM operations
// over the models in pkg/model.
package gorm
