// Package workers provides the background sweepers of the engine and an
// aggregate for running them in a unified way.
//
// Two sweepers exist: the escalation sweeper moves CONFIRMED cases whose
// waiting period elapsed to FINAL, and the release scheduler releases
// time capsules that became eligible. Both delegate the actual sweep to
// the service layer and only own the ticking.
package workers

import "context"

// Worker is the interface implemented by every background worker. Run
// must not block: implementations spawn their processing goroutine and
// return, stopping when ctx is canceled.
type Worker interface {
	Run(ctx context.Context)
}
