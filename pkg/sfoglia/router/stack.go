package router

// Frame is a single entry in the navigation stack: the screen that was left,
// the input it was called with, and any resume state it returned.
type Frame struct {
	Screen Screen
	Input  any
	Resume any
}

// Stack manages navigation history for back navigation.
type Stack struct {
	frames []Frame
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push records a frame when navigating forward to a new screen.
func (s *Stack) Push(screen Screen, input any, resume any) {
	s.frames = append(s.frames, Frame{
		Screen: screen,
		Input:  input,
		Resume: resume,
	})
}

// Pop removes and returns the top frame, or nil if the stack is empty.
func (s *Stack) Pop() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	frame := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return &frame
}

// Peek returns the top frame without removing it, or nil if the stack is
// empty.
func (s *Stack) Peek() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

// IsEmpty returns true if the stack has no frames.
func (s *Stack) IsEmpty() bool {
	return len(s.frames) == 0
}

// Depth returns the number of frames on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Clear removes all frames.
func (s *Stack) Clear() {
	s.frames = s.frames[:0]
}
