// Package sim drives a series of elections and aggregates their outcomes.
//
// A [Runner] owns the random source and the election engines. With one
// worker every election draws from a single stream seeded by
// Params.Seed, so a seed reproduces the whole run. With more workers each
// election gets its own stream seeded by random.SubSeed(seed, n) and runs
// on a bounded goroutine pool; results are still delivered to the handler
// in election order.
package sim
