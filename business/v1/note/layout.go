package note

import "strings"

// rotations are the tilt, in degrees, of each note in a row of four
var rotations = [4]int{1, -2, 2, -1}

// Placement is a note with the cosmetic position data the presentation layer paints it with
type Placement struct {
	Note     Note `json:"note"`
	Index    int  `json:"index" example:"0"`
	Rotation int  `json:"rotation" example:"1"`
}

// Rotation returns the tilt of the note displayed at index
func Rotation(index int) int {
	return rotations[((index%4)+4)%4]
}

func Layout(notes []Note) []Placement {
	placements := make([]Placement, len(notes))
	for i, n := range notes {
		placements[i] = Placement{Note: n, Index: i, Rotation: Rotation(i)}
	}
	return placements
}

// Lines splits the description in the lines it is rendered with
func (n Note) Lines() []string {
	return strings.Split(n.Description, "\n")
}
