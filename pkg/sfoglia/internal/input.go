package internal

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a hardware-independent input event produced by the processor.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor maps raw SDL keyboard and controller events onto virtual
// buttons. Mappings can be overridden from the config file.
type InputProcessor struct {
	keyboardMapping   map[sdl.Keycode]constants.VirtualButton
	controllerMapping map[uint8]constants.VirtualButton
	controllers       map[int]*sdl.GameController
}

var processor *InputProcessor

func defaultKeyboardMapping() map[sdl.Keycode]constants.VirtualButton {
	return map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_RETURN:    constants.VirtualButtonA,
		sdl.K_SPACE:     constants.VirtualButtonA,
		sdl.K_ESCAPE:    constants.VirtualButtonB,
		sdl.K_BACKSPACE: constants.VirtualButtonB,
		sdl.K_TAB:       constants.VirtualButtonSelect,
		sdl.K_m:         constants.VirtualButtonMenu,
	}
}

func defaultControllerMapping() map[uint8]constants.VirtualButton {
	return map[uint8]constants.VirtualButton{
		sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
		sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
		sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
		sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
		sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
		sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
	}
}

// InitInputProcessor creates the shared input processor and opens any game
// controllers already attached.
func InitInputProcessor() {
	processor = &InputProcessor{
		keyboardMapping:   defaultKeyboardMapping(),
		controllerMapping: defaultControllerMapping(),
		controllers:       make(map[int]*sdl.GameController),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		processor.openController(i)
	}
}

// GetInputProcessor returns the shared input processor.
func GetInputProcessor() *InputProcessor {
	return processor
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index)
		return
	}
	joystickID := int(controller.Joystick().InstanceID())
	p.controllers[joystickID] = controller
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
}

// CloseAllControllers releases every opened game controller.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id, controller := range processor.controllers {
		controller.Close()
		delete(processor.controllers, id)
	}
}

// SetKeyboardMapping replaces keyboard bindings from key-name to button-name
// pairs, typically loaded from the [input.keyboard] config table. Unknown key
// or button names are skipped with a warning rather than failing startup.
func (p *InputProcessor) SetKeyboardMapping(bindings map[string]string) {
	for keyName, buttonName := range bindings {
		keycode := sdl.GetKeyFromName(keyName)
		if keycode == sdl.K_UNKNOWN {
			GetInternalLogger().Warn("Unknown key name in input mapping", "key", keyName)
			continue
		}
		button, err := constants.ParseVirtualButton(buttonName)
		if err != nil {
			GetInternalLogger().Warn("Unknown button name in input mapping", "button", buttonName)
			continue
		}
		p.keyboardMapping[keycode] = button
	}
}

// ProcessSDLEvent translates an SDL event into an InputEvent, or nil when the
// event carries no mapped button. Input is dropped entirely while the device
// is suspended.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	if InputSuspended() {
		return nil
	}

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := p.keyboardMapping[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := p.controllerMapping[e.Button]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if controller, ok := p.controllers[int(e.Which)]; ok {
				controller.Close()
				delete(p.controllers, int(e.Which))
			}
		}
	}

	return nil
}
