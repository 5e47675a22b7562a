package router

import (
	"errors"
	"fmt"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenShelf Screen = iota
//	    ScreenNotebook
//	    ScreenSettings
//	)
type Screen int

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// ErrNoTransition is returned by Run when no transition function was set.
var ErrNoTransition = errors.New("router: no transition function set")

// ScreenFunc runs a screen: it takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next
// screen. It receives the screen that just completed, its result, and the
// navigation stack, and returns the next screen and its input.
//
// Return (screen, input) to navigate forward, popped Stack values to go back,
// or (ScreenExit, nil) to leave the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// Router manages screen navigation with explicit data flow. Screens are
// registered with their functions, and a single transition function holds
// all routing logic in one place.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	stack      *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the router at the given screen with the given input. It keeps
// routing until the transition function returns ScreenExit or a screen fails.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %d: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions,
// allowing push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}
