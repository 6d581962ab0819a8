// Package harness provides utilities for integration testing the droidsound CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - DROIDSOUND_HOME: Isolated per test (temp directory)
//   - DROIDSOUND_DEBUG: Disabled to reduce noise
package harness
