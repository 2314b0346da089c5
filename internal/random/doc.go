// Package random provides the sampling primitives used by the election
// engine.
//
// The engine never draws from a generator directly. It draws through
// [Bounded], which maps the fixed-range output of a [Source] onto a
// half-open interval [0, ceiling) without modulo bias, by rejecting raw
// values that fall into the incomplete top bucket.
//
// # Sources
//
// A [Source] produces integers in [0, Range()). [NewSource] returns the
// default 31-bit source (Range() == 1<<31), matching the range of the
// classic C library generator the simulation limits are derived from.
// Tests substitute scripted sources to make allocation fully
// deterministic.
//
// # Seeding
//
// [SeedFromClock] folds the bytes of the current wall-clock second into a
// 32-bit seed. [SubSeed] derives independent per-iteration seeds from a
// base seed so that iterations can run on separate workers without
// sharing one stream.
package random
