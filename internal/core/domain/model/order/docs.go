// Package order contains the Order aggregate: the only entity with real
// state-machine semantics in the system. An order's status and resource
// allocation are mutated exclusively by the lifecycle engine and the
// reclamation sweep, always inside a single storage transaction.
package order
