package state

type Point struct{ X, Y float32 }

// Segment is one straight piece of a stroke, drawn between two
// consecutive drag positions.
type Segment struct {
	StrokeID string
	From, To Point
	Colour   string
	Width    float32
}

// Theme pairs a canvas background with the window title that goes with it.
type Theme struct {
	Name       string
	Background string
	Title      string
}

func LightTheme(owner string) Theme {
	return Theme{Name: "light", Background: "white", Title: owner + "'s Whiteboard"}
}

// DarkTheme is not offered by the Theme menu.
func DarkTheme(owner string) Theme {
	return Theme{Name: "dark", Background: "black", Title: owner + "'s blackboard"}
}
