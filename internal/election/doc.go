// Package election runs one simulated election per call and tallies it
// under several voting methods.
//
// An iteration moves through a fixed sequence of phases:
//
//	INIT → ALLOCATE → SCORE → SORT → TALLY → SYNTHESIZE → REDUCE → REPORT
//
// ALLOCATE spreads the population over a random subset of the candidate
// pool ([Allocate]). SCORE computes, for every active candidate, how the
// electorate leans relative to its platform and which opponent it
// disagrees with most ([Score]). TALLY derives the plurality, approval
// and antagonist winner sets, SYNTHESIZE builds the consensus candidate
// from the per-issue majority ([Consensus]), and REDUCE reassigns every
// voter to the closer of the two leading candidates ([TwoParty]).
//
// [Engine] owns all pool-sized buffers and reuses them across calls to
// [Engine.Run]; each call re-initializes them and returns a [Result] that
// shares no memory with the engine.
package election
