package reservation

import (
	"errors"
	"strings"
)

var ErrNoteTooLong = errors.New("note is too long (max 500 characters)")

const MaxNoteLength = 500

// Note is free text attached to a reservation. The owner-authoring path
// uses it to record a walk-in customer's name when booking on their behalf.
type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
