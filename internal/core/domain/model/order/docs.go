// Package order provides the order aggregate of the point of sale: line items, the
// per-unit kitchen stage map, the status aggregation rules and every workflow that
// mutates an order after it was taken (adding and cancelling items, quantity changes,
// stage advances, discounts, payment and the full edit sheet).
//
// Key business rules:
//   - total always equals the sum of price × quantity over non-cancelled items minus the discount
//   - every non-cancelled item has exactly one unit entry per index in [0, quantity)
//   - units move Preparing -> Delivering -> Billing; only payment makes an order Paid
//   - the order status is derived from unit stages, never trusted from a cached field
//   - cancellation flags a line instead of deleting it and cannot be undone
//   - every mutation after creation appends to an append-only edit history
package order
