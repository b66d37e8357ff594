package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ai-snake/core"
	"github.com/lixenwraith/ai-snake/events"
	"github.com/lixenwraith/ai-snake/status"
)

// Ticker is the step function the scheduler drives, *Engine satisfies it
type Ticker interface {
	Tick()
}

// ClockScheduler invokes Tick on a fixed interval outside the engine
// Handles pause without busy-wait and retimes when the difficulty changes
type ClockScheduler struct {
	ticker Ticker

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction
	mu               sync.RWMutex

	isPaused  atomic.Bool
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	wakeChan chan struct{} // Interrupts the sleep on retime, pause and resume

	// Frame synchronization
	updateDone chan<- struct{} // Send signal that a tick completed

	// Cached metric pointers
	statTicks  *atomic.Int64
	statPaused *atomic.Bool
}

// NewClockScheduler creates a scheduler ticking every interval
// Returns the scheduler and the receive side of the tick-completed signal
// reg may be nil when metrics are not wanted
func NewClockScheduler(ticker Ticker, interval time.Duration, reg *status.Registry) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	if reg == nil {
		reg = status.NewRegistry()
	}

	cs := &ClockScheduler{
		ticker:       ticker,
		tickInterval: interval,
		stopChan:     make(chan struct{}),
		wakeChan:     make(chan struct{}, 1),
		updateDone:   updateDone,
		statTicks:    reg.Ints.Get("engine.ticks"),
		statPaused:   reg.Bools.Get("engine.paused"),
	}

	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop, safe to call more than once
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// IsRunning reports whether the loop is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// Interval returns the current tick interval
func (cs *ClockScheduler) Interval() time.Duration {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.tickInterval
}

// SetInterval changes the tick interval, the next tick is one full interval away
func (cs *ClockScheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	cs.mu.Lock()
	cs.tickInterval = d
	cs.nextTickDeadline = time.Now().Add(d)
	cs.mu.Unlock()
	cs.wake()
}

// TickCount returns the number of ticks issued
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Pause suspends ticking
func (cs *ClockScheduler) Pause() {
	cs.isPaused.Store(true)
	cs.statPaused.Store(true)
	cs.wake()
}

// Resume restarts ticking one interval from now
func (cs *ClockScheduler) Resume() {
	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()
	cs.isPaused.Store(false)
	cs.statPaused.Store(false)
	cs.wake()
}

// TogglePause flips the pause state, returns true if now paused
func (cs *ClockScheduler) TogglePause() bool {
	if cs.isPaused.Load() {
		cs.Resume()
		return false
	}
	cs.Pause()
	return true
}

// IsPaused reports whether ticking is suspended
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// HandleEvent retimes the scheduler from the new difficulty's table row
func (cs *ClockScheduler) HandleEvent(event events.GameEvent) {
	if payload, ok := event.Payload.(DifficultyChangedPayload); ok {
		cs.SetInterval(payload.Settings.TickInterval)
	}
}

// EventTypes implements events.Handler
func (cs *ClockScheduler) EventTypes() []events.EventType {
	return []events.EventType{events.EventDifficultyChanged}
}

func (cs *ClockScheduler) wake() {
	select {
	case cs.wakeChan <- struct{}{}:
	default:
	}
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		if cs.isPaused.Load() {
			select {
			case <-cs.wakeChan:
			case <-cs.stopChan:
				return
			}
			continue
		}

		now := time.Now()

		cs.mu.RLock()
		deadline := cs.nextTickDeadline
		interval := cs.tickInterval
		cs.mu.RUnlock()

		if !now.Before(deadline) {
			cs.ticker.Tick()
			cs.tickCount.Add(1)
			cs.statTicks.Add(1)

			cs.mu.Lock()
			// Only advance a deadline SetInterval did not replace meanwhile
			if cs.nextTickDeadline.Equal(deadline) {
				cs.nextTickDeadline = deadline.Add(interval)
				if now.Sub(cs.nextTickDeadline) > interval*2 {
					cs.nextTickDeadline = now.Add(interval)
				}
			}
			cs.mu.Unlock()

			select {
			case cs.updateDone <- struct{}{}:
			default:
			}
			continue
		}

		timer.Reset(deadline.Sub(now))
		select {
		case <-timer.C:
		case <-cs.wakeChan:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-cs.stopChan:
			return
		}
	}
}
