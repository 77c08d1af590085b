// Package order contains the Order aggregate and its supporting value objects.
//
// The aggregate consists of:
//   - Order: the aggregate root, owning its line items and two derived
//     aggregate fields (total amount, items count)
//   - Item: a product line owned exclusively by one order
//   - Status: the lifecycle state machine (pending, processing, fulfilled,
//     cancelled) with deletion-guard rules
//   - Number: the ORD-NNNNNN business identifier
//
// All mutation goes through aggregate methods so the invariants documented on
// Order hold after every operation. Persistence adapters reconstruct instances
// via the Restore functions.
package order
