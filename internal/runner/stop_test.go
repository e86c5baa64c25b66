package runner

import (
	"sync"
	"testing"
)

func TestStopSignal(t *testing.T) {
	var s StopSignal
	if s.Stopped() {
		t.Fatal("zero value should not be stopped")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Stop()
		}()
	}
	wg.Wait()

	if !s.Stopped() {
		t.Fatal("expected stopped after Stop")
	}
	s.Stop()
	if !s.Stopped() {
		t.Fatal("Stop must be idempotent")
	}
}
