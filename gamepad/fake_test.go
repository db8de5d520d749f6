package gamepad

import "sync"

// fakeDriver implements Driver against in-memory devices so the core can be
// exercised without hardware. The polling goroutine calls into it
// concurrently with test assertions, hence the mutex.
type fakeDriver struct {
	mu sync.Mutex

	initOK    bool
	inited    bool
	hintsSet  bool
	initCalls int
	quitCalls int

	pumpCalls   int
	updateCalls int
	quitEvent   bool // next PumpEvents reports a quit signal

	devices   []*fakeDevice
	lastError string
}

func newFakeDriver(devices ...*fakeDevice) *fakeDriver {
	d := &fakeDriver{initOK: true, devices: devices}
	for _, dev := range devices {
		dev.drv = d
	}
	return d
}

func (d *fakeDriver) SetHints() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hintsSet = true
}

func (d *fakeDriver) Init() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initCalls++
	if !d.initOK {
		d.lastError = "fake init failure"
		return false
	}
	d.inited = true
	return true
}

func (d *fakeDriver) Quit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quitCalls++
	d.inited = false
}

func (d *fakeDriver) PumpEvents() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pumpCalls++
	quit := d.quitEvent
	d.quitEvent = false
	return quit
}

func (d *fakeDriver) Update() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.updateCalls++
}

func (d *fakeDriver) Devices() []DeviceID {
	d.mu.Lock()
	defer d.mu.Unlock()
	var ids []DeviceID
	for _, dev := range d.devices {
		if dev.present {
			ids = append(ids, dev.id)
		}
	}
	return ids
}

func (d *fakeDriver) DeviceInfo(id DeviceID) (DeviceInfo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, dev := range d.devices {
		if dev.present && dev.id == id {
			return DeviceInfo{
				ID:      dev.id,
				Name:    dev.info.Name,
				GUID:    dev.info.GUID,
				Vendor:  dev.info.Vendor,
				Product: dev.info.Product,
				Type:    dev.info.Type,
			}, true
		}
	}
	return DeviceInfo{}, false
}

func (d *fakeDriver) Open(id DeviceID) Device {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, dev := range d.devices {
		if dev.present && dev.id == id {
			return dev
		}
	}
	d.lastError = "fake device not found"
	return nil
}

func (d *fakeDriver) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastError
}

func (d *fakeDriver) ClearError() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastError = ""
}

func (d *fakeDriver) setQuitEvent() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quitEvent = true
}

func (d *fakeDriver) counts() (pump, update, quit int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pumpCalls, d.updateCalls, d.quitCalls
}

type rumbleCall struct {
	left, right uint16
	durationMS  uint32
}

// fakeDevice is one connected controller. Raw channel values are poked by
// tests and read back through the handle.
type fakeDevice struct {
	drv *fakeDriver

	id          DeviceID
	playerIndex int
	present     bool // enumerable and openable
	connected   bool

	buttons map[Button]bool
	axes    map[Axis]int16

	connectionCode int
	powerCode      int
	batteryPercent int

	info Info
	caps Capabilities

	rumbleOK     bool
	triggersOK   bool
	rumbleCalls  []rumbleCall
	triggerCalls []rumbleCall
	closeCalls   int
}

func newFakeDevice(id DeviceID) *fakeDevice {
	return &fakeDevice{
		id:             id,
		playerIndex:    -1,
		present:        true,
		connected:      true,
		buttons:        make(map[Button]bool),
		axes:           make(map[Axis]int16),
		batteryPercent: -1,
		rumbleOK:       true,
		triggersOK:     true,
	}
}

func (f *fakeDevice) Close() {
	f.drv.mu.Lock()
	defer f.drv.mu.Unlock()
	f.closeCalls++
}

func (f *fakeDevice) Connected() bool {
	f.drv.mu.Lock()
	defer f.drv.mu.Unlock()
	return f.connected
}

func (f *fakeDevice) ID() DeviceID { return f.id }
func (f *fakeDevice) PlayerIndex() int { return f.playerIndex }

func (f *fakeDevice) Button(b Button) bool { return f.buttons[b] }
func (f *fakeDevice) Axis(a Axis) int16 { return f.axes[a] }

func (f *fakeDevice) Info() Info { return f.info }
func (f *fakeDevice) ConnectionStateCode() int { return f.connectionCode }
func (f *fakeDevice) PowerStateCode() (int, int) {
	return f.powerCode, f.batteryPercent
}
func (f *fakeDevice) Capabilities() Capabilities { return f.caps }

func (f *fakeDevice) Rumble(low, high uint16, durationMS uint32) bool {
	if !f.rumbleOK {
		f.drv.lastError = "fake rumble failure"
		return false
	}
	f.rumbleCalls = append(f.rumbleCalls, rumbleCall{low, high, durationMS})
	return true
}

func (f *fakeDevice) RumbleTriggers(left, right uint16, durationMS uint32) bool {
	if !f.triggersOK {
		return false
	}
	f.triggerCalls = append(f.triggerCalls, rumbleCall{left, right, durationMS})
	return true
}
