package note

// DefaultKey is the key the notes blob has always been stored under
const DefaultKey = "postItNotes"

// Untitled replaces an empty title
const Untitled = "Sin título"

// TimeLayout is the sortable format of createdAt, always in UTC
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Note is the persisted shape of a note
type Note struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsImportant bool   `json:"isImportant"`
	CreatedAt   string `json:"createdAt"`
}
