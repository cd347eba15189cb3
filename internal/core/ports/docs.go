// Package ports defines the contracts between the order tracker core and its
// infrastructure: key-value persistence, the business-scoped order repository and its
// unit of work, the menu repository and the order event publisher.
package ports
