// Package kernel holds the value objects shared by the POS domain model:
// UUID for order identity and Money for prices, totals and discounts.
package kernel
