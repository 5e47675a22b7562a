package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes how the framework reacts to the hardware power
// button on embedded devices. A short press suspends via the CFW script, a
// long press powers the device off.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code of the power button
	DevicePath      string        // input device exposing the button
	ShortPressMax   time.Duration // presses up to this length suspend, longer presses shut down
	CoolDownTime    time.Duration // ignore further presses for this long after resume
	SuspendScript   string        // CFW suspend script path
	ShutdownCommand string        // poweroff command path
}

// inputSuspended gates widget input while the device is suspending or waking.
// Written by the power button goroutine, read by every widget event loop.
var inputSuspended = atomic.NewBool(false)

// InputSuspended reports whether input should be dropped because the device
// is mid suspend/resume.
func InputSuspended() bool {
	return inputSuspended.Load()
}

// PowerButtonHandler watches the power button input device until the
// framework shuts down. The WaitGroup is held by the window for the life of
// the process; closeWindow releases it, which stops the handler.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		wg.Wait()
		return
	}

	// Closing the device unblocks ReadOne when the framework exits.
	go func() {
		wg.Wait()
		device.Close()
	}()

	var pressedAt time.Time
	var coolDownUntil time.Time

	for {
		event, err := device.ReadOne()
		if err != nil {
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != pbc.ButtonCode {
			continue
		}

		now := time.Now()
		if now.Before(coolDownUntil) {
			continue
		}

		switch event.Value {
		case 1: // press
			pressedAt = now

		case 0: // release
			if pressedAt.IsZero() {
				continue
			}
			held := now.Sub(pressedAt)
			pressedAt = time.Time{}

			if held <= pbc.ShortPressMax {
				GetInternalLogger().Info("Power button short press, suspending", "held", held)
				inputSuspended.Store(true)
				if err := exec.Command(pbc.SuspendScript).Run(); err != nil {
					GetInternalLogger().Error("Suspend script failed", "script", pbc.SuspendScript, "error", err)
				}
				inputSuspended.Store(false)
				coolDownUntil = time.Now().Add(pbc.CoolDownTime)
			} else {
				GetInternalLogger().Info("Power button long press, shutting down", "held", held)
				if err := exec.Command(pbc.ShutdownCommand).Run(); err != nil {
					GetInternalLogger().Error("Shutdown command failed", "command", pbc.ShutdownCommand, "error", err)
				}
			}
		}
	}
}
