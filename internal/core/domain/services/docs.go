// Package services provides domain services of the order service that span more
// than one aggregate.
//
// The package includes:
//   - OrderPlacer: turns resolved menu items into a new Order, snapshotting name and price
package services
