package sfoglia

// NotebookAction represents how the user left the Notebook widget.
type NotebookAction int

const (
	NotebookActionDismissed NotebookAction = iota // User backed out (B button, quit)
	NotebookActionCompleted                       // User confirmed from the end position (A button on the back cover)
)

// NotebookResult is the standardized return type for the Notebook widget.
type NotebookResult struct {
	Action    NotebookAction
	FinalPage int  // Position when the widget exited: 0 = cover, 1..N pages, N+1 = end
	Opened    bool // Whether the cover was ever opened
}
