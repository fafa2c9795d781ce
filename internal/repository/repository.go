// Package repository contains the GORM data access layer. Uniqueness rules
// (tenant subdomain, per-tenant student username, invite code) live in
// database unique indexes; repositories translate the resulting constraint
// violations into the typed errors from internal/errors instead of
// pre-checking with a separate read.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, optionally on one of the named constraints. With no names it
// matches any unique violation.
func isUniqueViolation(err error, constraints ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}
