// Package router provides screen navigation with explicit data flow for
// applications built on sfoglia widgets.
//
// Each screen is a function from an input to a result; a single transition
// function owns all routing decisions, and a frame stack supports back
// navigation with resume state (e.g. the page a notebook was left open on).
//
// # Basic Usage
//
//	const (
//	    ScreenShelf router.Screen = iota
//	    ScreenNotebook
//	)
//
//	type ShelfInput struct {
//	    Notebooks []Notebook
//	    Resume    *ShelfResume // nil if fresh, populated when returning
//	}
//
//	type ShelfResult struct {
//	    Action   ShelfAction
//	    Selected *Notebook
//	    Resume   *ShelfResume
//	}
//
//	r := router.New()
//
//	r.Register(ScreenShelf, func(input any) (any, error) {
//	    return shelfScreen(input.(ShelfInput)), nil
//	})
//
//	r.Register(ScreenNotebook, func(input any) (any, error) {
//	    return notebookScreen(input.(NotebookInput)), nil
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenShelf:
//	        res := result.(ShelfResult)
//	        if res.Action == ShelfActionOpened {
//	            stack.Push(from, input, res.Resume)
//	            return ScreenNotebook, NotebookInput{Notebook: *res.Selected}
//	        }
//	        return router.ScreenExit, nil
//	    case ScreenNotebook:
//	        if frame := stack.Pop(); frame != nil {
//	            in := frame.Input.(ShelfInput)
//	            in.Resume, _ = frame.Resume.(*ShelfResume)
//	            return frame.Screen, in
//	        }
//	        return router.ScreenExit, nil
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	r.Run(ScreenShelf, ShelfInput{Notebooks: notebooks})
//
// # Resume State
//
// Screens can return resume state (like the reading position) that gets
// stored on the stack when navigating forward. When navigating back, pop the
// frame and hand the resume state back to the screen through its input so it
// can restore position. Stateless screens (dialogs, confirmations) leave it
// nil.
package router
