// Package logging provides structured logging for votesim runs.
//
// This package wraps Go's log/slog to emit JSON records with persistent
// context attributes, so that a long batch of simulated elections can be
// filtered after the fact by run, election number, or engine phase.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	runLogger := logger.WithRun("seed-1350648000")
//	runLogger.Info("run started", "issues", 4, "population", 100)
//
//	electionLogger := runLogger.WithElection(7).WithPhase("allocate")
//	electionLogger.Debug("candidates allocated", "active", 9)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"candidates allocated","run_id":"seed-1350648000","election":7,"phase":"allocate","active":9}
//
// # Log Rotation
//
// [NewLoggerWithRotation] writes through a [RotatingWriter] that rolls
// votesim.log over to votesim.log.1 .. votesim.log.N once it grows past
// the configured size.
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewLoggerTo] to capture records
// in a buffer.
package logging
