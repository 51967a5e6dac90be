// Package order provides the Order aggregate root of the restaurant order service
// together with its lines and lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root that owns identity, table, lines, notes and status
//   - Line: one menu item snapshot with quantity and kitchen notes
//   - Status: the RECEIVED -> IN_PREPARATION -> READY -> DELIVERED state machine
//
// Key business rules:
//   - An order has at least one line and its total is always the sum of line subtotals
//   - Status moves only to its immediate successor; repeating the current status is a no-op
//   - Table labels are at most 20 characters, order notes 500, line notes 200
//   - Orders are never deleted; DELIVERED is final
package order
