package gamepad

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DefaultPollInterval is the tick rate used when Init is given a
// non-positive interval, roughly 60Hz.
const DefaultPollInterval = 16 * time.Millisecond

// Library owns the single backend connection and the periodic polling tick
// that keeps buffered controller state fresh. It is an explicit context
// object: callers construct one, Init it, thread it to wherever handles are
// opened, and Dispose it on the way out. All mutable process-wide state of
// the system lives here.
//
// Library and handle operations synchronize on one internal lock. The
// polling tick normally only touches the backend, but a quit event on the
// event queue makes it tear the whole library down, closing every open
// handle from the tick goroutine; the lock is what makes that safe against
// handle reads in flight on other goroutines.
type Library struct {
	drv Driver
	log *slog.Logger

	mu          sync.Mutex
	initialized bool
	stop        chan struct{}
	done        chan struct{}
	handles     map[*Gamepad]struct{}
}

// New creates a Library around the given backend driver. A nil logger means
// slog.Default.
func New(drv Driver, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{
		drv:     drv,
		log:     logger,
		handles: make(map[*Gamepad]struct{}),
	}
}

// Init configures the backend and starts the polling tick. It is a no-op
// when the library is already initialized. On failure nothing is started and
// every subsequent device operation fails with ErrNotInitialized.
func (l *Library) Init(pollInterval time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.initialized {
		return nil
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	l.drv.SetHints()
	if !l.drv.Init() {
		return fmt.Errorf("gamepad: backend init failed: %s", l.drv.LastError())
	}

	l.initialized = true
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.poll(pollInterval, l.stop, l.done)
	l.log.Debug("gamepad library initialized", "pollInterval", pollInterval)
	return nil
}

// poll is the periodic tick loop. Within one tick the event queue is drained
// before device state is refreshed, so disconnect and quit events are
// observed before any stale per-device read. A quit signal on the queue
// triggers the same teardown as Dispose.
func (l *Library) poll(interval time.Duration, stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if l.drv.PumpEvents() {
				l.log.Info("quit event received, shutting gamepad library down")
				l.mu.Lock()
				l.stop = nil // Dispose must not wait for this goroutine
				l.teardownLocked(false)
				l.mu.Unlock()
				return
			}
			l.drv.Update()
		}
	}
}

// Dispose cancels the polling tick, drains remaining queued events, closes
// any handles still open and shuts the backend down. Idempotent, and safe to
// call when Init never succeeded.
func (l *Library) Dispose() {
	l.mu.Lock()
	stop, done := l.stop, l.done
	l.stop = nil
	l.mu.Unlock()
	if stop != nil {
		close(stop)
		<-done
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.teardownLocked(true)
}

func (l *Library) teardownLocked(drain bool) {
	if !l.initialized {
		return
	}
	for g := range l.handles {
		g.dev.Close()
		g.dev = nil
		delete(l.handles, g)
	}
	if drain {
		l.drv.PumpEvents()
	}
	l.drv.Quit()
	l.initialized = false
	l.log.Debug("gamepad library disposed")
}

// Initialized reports whether Init has succeeded and Dispose has not yet run.
func (l *Library) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialized
}

// Devices enumerates the IDs of all currently connected controllers.
func (l *Library) Devices() ([]DeviceID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.initialized {
		return nil, ErrNotInitialized
	}
	return l.drv.Devices(), nil
}

// DeviceInfo returns pre-open metadata for a connected controller.
func (l *Library) DeviceInfo(id DeviceID) (DeviceInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.initialized {
		return DeviceInfo{}, ErrNotInitialized
	}
	info, ok := l.drv.DeviceInfo(id)
	if !ok {
		return DeviceInfo{}, fmt.Errorf("%w: device id %d", ErrDeviceUnavailable, id)
	}
	return info, nil
}

// LastError returns the backend's process-wide error string, overwritten by
// the most recent failing backend call. It is not scoped per handle.
func (l *Library) LastError() string { return l.drv.LastError() }

// ClearError resets the backend's error string.
func (l *Library) ClearError() { l.drv.ClearError() }
