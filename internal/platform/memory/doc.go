// Package memory provides an in-memory implementation of the store
// interfaces. It is the reference implementation used by tests and by the
// server's -memory run mode; data does not survive a restart.
package memory
