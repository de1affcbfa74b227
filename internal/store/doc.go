// Package store provides abstractions for data persistence. It defines the
// repository interfaces consumed by the service layer along with the shared
// error taxonomy and transaction helpers used by every store implementation.
package store
