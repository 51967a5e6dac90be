// Package kernel provides the shared domain primitives of the order service.
//
// The package includes:
//   - UUID: identifier value object for orders and menu items
//   - Money: exact non-negative amount backed by shopspring/decimal
//
// Both are immutable value objects whose zero values fail validation.
package kernel
