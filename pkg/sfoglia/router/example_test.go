package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenShelf router.Screen = iota
	ScreenNotebook
)

// Action enums for each screen
type ShelfAction int

const (
	ShelfActionOpened ShelfAction = iota
	ShelfActionBack
)

type NotebookScreenAction int

const (
	NotebookScreenActionBack NotebookScreenAction = iota
	NotebookScreenActionFinished
)

// Domain types
type Notebook struct {
	Title string
	Pages int
}

// Input types - what each screen needs to render
type ShelfInput struct {
	Notebooks []Notebook
	Resume    *ShelfResume
}

type NotebookInput struct {
	Notebook   Notebook
	ResumePage int
}

// Result types - what each screen returns
type ShelfResult struct {
	Action   ShelfAction
	Selected *Notebook
	Resume   *ShelfResume
}

type NotebookScreenResult struct {
	Action    NotebookScreenAction
	FinalPage int
}

// Resume types - position state for back navigation
type ShelfResume struct {
	SelectedIndex int
}

// Example demonstrates routing between a shelf screen and a notebook screen,
// restoring the shelf position when the reader backs out.
func Example() {
	r := router.New()

	shelfVisits := 0

	r.Register(ScreenShelf, func(input any) (any, error) {
		in := input.(ShelfInput)
		shelfVisits++

		if shelfVisits == 1 {
			fmt.Println("Shelf: opening first notebook")
			return ShelfResult{
				Action:   ShelfActionOpened,
				Selected: &in.Notebooks[0],
				Resume:   &ShelfResume{SelectedIndex: 0},
			}, nil
		}
		fmt.Printf("Shelf: restored to index %d, exiting\n", in.Resume.SelectedIndex)
		return ShelfResult{Action: ShelfActionBack}, nil
	})

	r.Register(ScreenNotebook, func(input any) (any, error) {
		in := input.(NotebookInput)
		fmt.Printf("Notebook: reading %s, closing on page 2\n", in.Notebook.Title)
		return NotebookScreenResult{Action: NotebookScreenActionBack, FinalPage: 2}, nil
	})

	// Define all transitions in one place
	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenShelf:
			res := result.(ShelfResult)
			switch res.Action {
			case ShelfActionOpened:
				stack.Push(from, ShelfInput{Notebooks: []Notebook{{Title: "Field Notes", Pages: 4}}}, res.Resume)
				return ScreenNotebook, NotebookInput{Notebook: *res.Selected}
			case ShelfActionBack:
				return router.ScreenExit, nil
			}

		case ScreenNotebook:
			if frame := stack.Pop(); frame != nil {
				in := frame.Input.(ShelfInput)
				in.Resume, _ = frame.Resume.(*ShelfResume)
				return frame.Screen, in
			}
			return router.ScreenExit, nil
		}
		return router.ScreenExit, nil
	})

	notebooks := []Notebook{{Title: "Field Notes", Pages: 4}}
	_ = r.Run(ScreenShelf, ShelfInput{Notebooks: notebooks})

	// Output:
	// Shelf: opening first notebook
	// Notebook: reading Field Notes, closing on page 2
	// Shelf: restored to index 0, exiting
}

// Example_resumePage demonstrates carrying the reading position through the
// stack so reopening a notebook lands on the page it was closed at.
func Example_resumePage() {
	r := router.New()

	readings := 0

	r.Register(ScreenShelf, func(input any) (any, error) {
		in := input.(ShelfInput)

		if readings == 2 {
			fmt.Println("Shelf: done")
			return ShelfResult{Action: ShelfActionBack}, nil
		}
		return ShelfResult{
			Action:   ShelfActionOpened,
			Selected: &in.Notebooks[0],
			Resume:   &ShelfResume{},
		}, nil
	})

	lastPage := 0
	r.Register(ScreenNotebook, func(input any) (any, error) {
		in := input.(NotebookInput)
		readings++
		fmt.Printf("Notebook: opened %s at page %d\n", in.Notebook.Title, in.ResumePage)
		lastPage = in.ResumePage + 3
		return NotebookScreenResult{Action: NotebookScreenActionBack, FinalPage: lastPage}, nil
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenShelf:
			res := result.(ShelfResult)
			if res.Action == ShelfActionOpened {
				stack.Push(from, ShelfInput{Notebooks: []Notebook{{Title: "Journal"}}}, res.Resume)
				return ScreenNotebook, NotebookInput{Notebook: *res.Selected, ResumePage: lastPage}
			}
			return router.ScreenExit, nil

		case ScreenNotebook:
			if frame := stack.Pop(); frame != nil {
				in := frame.Input.(ShelfInput)
				in.Resume, _ = frame.Resume.(*ShelfResume)
				return frame.Screen, in
			}
			return router.ScreenExit, nil
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(ScreenShelf, ShelfInput{Notebooks: []Notebook{{Title: "Journal"}}})

	// Output:
	// Notebook: opened Journal at page 0
	// Notebook: opened Journal at page 3
	// Shelf: done
}
