// Package kvstore provides the implementations of ports.KeyValueStore: an in-process
// map for tests and single-node demos, a gorm table usable with postgres or sqlite,
// and redis.
package kvstore
