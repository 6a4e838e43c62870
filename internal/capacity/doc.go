// Package capacity holds the workload reconciliation and batch scheduling rules.
//
// Every function here works on plain values and collections: callers load the
// current instructors or activities, call into this package and persist what
// comes back. Nothing in the package touches HTTP, storage or logging.
package capacity
