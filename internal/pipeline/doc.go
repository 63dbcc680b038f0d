// Package pipeline fans popularity lookups out over a bounded worker pool.
//
// A WorkerPool caps how many lookups run at once. The pool is created by the
// caller and handed to NewAggregator, so its size is explicit and tests can
// use their own. The Aggregator runs one lookup per name on the pool and
// returns exactly one record per name, in input order, once all of them
// have finished. Lookups never fail; degraded results are ordinary records.
//
// The pool is built on errgroup.Group with SetLimit.
package pipeline
