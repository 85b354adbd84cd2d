// Package cpu provides a software implementation of the rtc interfaces.
//
// It has no acceleration structure; every query tests all committed
// triangles. It is meant for tiny scenes such as the single triangle used by
// the tutorial.
package cpu

import (
	"fmt"
	"sync"

	"github.com/achilleasa/minimal/log"
	"github.com/achilleasa/minimal/rtc"
	"github.com/google/uuid"
)

// The name this backend registers under.
const BackendName = "cpu"

var logger = log.New("rtc/cpu")

func init() {
	rtc.Register(BackendName, "software triangle intersector (no acceleration structure)", func(config string) (rtc.Device, error) {
		return NewDevice(config)
	})
}

// A software device.
type Device struct {
	id  string
	cfg deviceConfig

	mu       sync.Mutex
	refCount int
	lastErr  rtc.ErrorCode
	errFn    rtc.ErrorFunc
}

// Create a new device. See parseConfig for the supported config keys.
func NewDevice(config string) (*Device, error) {
	cfg, err := parseConfig(config)
	if err != nil {
		return nil, err
	}

	d := &Device{
		id:       uuid.NewString(),
		cfg:      cfg,
		refCount: 1,
	}
	d.tracef("created device %s", d.id)
	return d, nil
}

func (d *Device) Id() string {
	return d.id
}

func (d *Device) SetErrorFunc(fn rtc.ErrorFunc) {
	d.mu.Lock()
	d.errFn = fn
	d.mu.Unlock()
}

func (d *Device) Error() rtc.ErrorCode {
	d.mu.Lock()
	defer d.mu.Unlock()

	code := d.lastErr
	d.lastErr = rtc.NoError
	return code
}

func (d *Device) NewScene(flags rtc.SceneFlags) (rtc.Scene, error) {
	d.mu.Lock()
	if d.refCount == 0 {
		d.mu.Unlock()
		return nil, d.raise(rtc.InvalidOperation, "cannot create scene on a released device")
	}
	d.refCount++
	d.mu.Unlock()

	sc := &Scene{
		device:   d,
		flags:    flags,
		refCount: 1,
	}
	d.tracef("created scene (flags: %d)", flags)
	return sc, nil
}

func (d *Device) Retain() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.refCount > 0 {
		d.refCount++
	}
}

func (d *Device) Release() {
	d.mu.Lock()
	if d.refCount == 0 {
		d.mu.Unlock()
		d.raise(rtc.InvalidOperation, "device released more times than acquired")
		return
	}
	d.refCount--
	remaining := d.refCount
	d.mu.Unlock()

	if remaining == 0 {
		d.tracef("destroyed device %s", d.id)
	}
}

// Get the number of outstanding references.
func (d *Device) RefCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refCount
}

// Record an error, invoke the error callback and return the error.
func (d *Device) raise(code rtc.ErrorCode, format string, args ...interface{}) error {
	err := &rtc.Error{Code: code, Msg: fmt.Sprintf(format, args...)}

	d.mu.Lock()
	if d.lastErr == rtc.NoError {
		d.lastErr = code
	}
	errFn := d.errFn
	d.mu.Unlock()

	if errFn != nil {
		errFn(code, err.Msg)
	}
	return err
}

func (d *Device) tracef(format string, args ...interface{}) {
	if d.cfg.verbose > 0 {
		logger.Infof(format, args...)
	}
}
