// Package postgres provides PostgreSQL implementations of the store
// interfaces, along with helpers that translate driver-level errors into the
// store error taxonomy.
package postgres
