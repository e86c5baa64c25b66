package runner

import "sync/atomic"

// StopSignal is a one-way flag shared by the dispatcher and its workers.
// Once Stop has been called, Stopped reports true to every goroutine.
type StopSignal struct {
	stopped atomic.Bool
}

func (s *StopSignal) Stop() {
	s.stopped.Store(true)
}

func (s *StopSignal) Stopped() bool {
	return s.stopped.Load()
}
