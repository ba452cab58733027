// Package kernel contains shared value objects used by every aggregate in
// the ordering domain. Kernel types are immutable, validate themselves,
// and carry no business behavior of their own.
package kernel
