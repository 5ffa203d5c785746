package pkg

// Action is what a keystroke means to the move line.
type Action string

const (
	ActionNone   Action = "None"
	ActionType          = Action("Type")
	ActionErase         = Action("Erase")
	ActionSubmit        = Action("Submit")
	ActionResize        = Action("Resize")
	ActionExit          = Action("Exit")
)
