package blist

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
)

// Releasable is implemented by element types that hold an external resource
// and want notification when their last reference leaves a List. Elements
// that don't implement it are left to the garbage collector, which is the
// idiomatic Go equivalent of "release exactly once" for non-resource types.
type Releasable interface {
	Release()
}

// releaseFloor is the capacity the deferred-release queue shrinks back to
// once drained, instead of releasing its backing array entirely.
const releaseFloor = 16

var (
	releaseMu      sync.Mutex
	pendingRelease []func()
	flushing       bool
	flushCast      = caster.New(0)
)

// queueRelease defers running thunk until the current public List operation
// returns, mirroring the process-wide deferred-release queue of the design:
// a release triggered while a node is mid-privatization must not reenter
// List code before the caller's own structural change is complete.
func queueRelease(thunk func()) {
	releaseMu.Lock()
	pendingRelease = append(pendingRelease, thunk)
	releaseMu.Unlock()
}

// flushReleases drains the deferred-release queue. It is reentrant: a
// thunk may itself call a List operation that queues more releases, and
// the loop keeps draining until the queue is empty rather than returning
// after one pass, so the queue always reflects exactly the set of still-
// pending releases.
func flushReleases() {
	releaseMu.Lock()
	if flushing {
		releaseMu.Unlock()
		return
	}
	flushing = true
	releaseMu.Unlock()

	total := 0
	for {
		releaseMu.Lock()
		if len(pendingRelease) == 0 {
			if cap(pendingRelease) > releaseFloor {
				pendingRelease = make([]func(), 0, releaseFloor)
			}
			flushing = false
			releaseMu.Unlock()
			break
		}
		batch := pendingRelease
		pendingRelease = nil
		releaseMu.Unlock()

		for _, thunk := range batch {
			thunk()
		}
		total += len(batch)
	}
	if total > 0 {
		if err := flushCast.Pub(context.Background(), total); err != nil {
			tracer().Errorf("blist: release broadcast: %s", err.Error())
		}
	}
}

// Subscribe returns a channel that receives, once per flush that released
// anything, the total number of releases that flush drained from the
// deferred-release queue, plus an unsubscribe function. It exists
// for tests and diagnostics that want to observe release activity without
// participating in it.
func Subscribe() (<-chan interface{}, func()) {
	return flushCast.Sub(context.Background(), 0)
}

func releaseElement(v any) {
	if r, ok := v.(Releasable); ok {
		queueRelease(r.Release)
	}
}
