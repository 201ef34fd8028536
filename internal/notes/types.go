package notes

// Exercise types supported by the admin form.
const (
	ExerciseFillBlank      = "fill-blank"
	ExerciseMultipleChoice = "multiple-choice"
	ExerciseText           = "text"
)

// Note is one vocabulary entry parsed from a block of admin text.
type Note struct {
	Title         string   `json:"title"`
	Pronunciation string   `json:"pronunciation"` // URL or empty
	Definition    string   `json:"definition"`
	Examples      []string `json:"examples"`
}

// Link is an external resource attached to a session or exercise.
type Link struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Exercise is a practice item attached to a session.
// Which fields are meaningful depends on Type.
type Exercise struct {
	Type         string   `json:"type"`
	Question     string   `json:"question"`
	Answer       string   `json:"answer,omitempty"`       // fill-blank
	Options      []string `json:"options,omitempty"`      // multiple-choice
	CorrectIndex int      `json:"correct_index"`          // multiple-choice, -1 when unmarked
	Instructions string   `json:"instructions,omitempty"` // text
	Links        []Link   `json:"links,omitempty"`
}

// Session is one weekly club meeting.
// Notes are always replaced as a whole on edit.
type Session struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"` // ISO date, 2006-01-02
	Notes     []Note     `json:"notes"`
	Exercises []Exercise `json:"exercises"`
	Links     []Link     `json:"links"`
}

// FindNote returns the first note with the given title.
func (s Session) FindNote(title string) (Note, bool) {
	for _, n := range s.Notes {
		if n.Title == title {
			return n, true
		}
	}
	return Note{}, false
}
