// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the account
// store (defined in internal/store) to fulfill ledger operations.
//
// The ledger service owns every business rule that the store deliberately
// does not: input validation ordering, the per-transaction deposit ceiling,
// the non-negative balance policy, and the two-leg transfer protocol with its
// partial-failure handling. The store underneath only guarantees identifier
// uniqueness and per-key atomic read-modify-write.
//
// Service methods return sentinel errors for expected business outcomes;
// unexpected faults are wrapped in LedgerError. Callers use errors.Is to
// check for specific conditions, and the API layer maps service errors to
// HTTP status codes.
package service
