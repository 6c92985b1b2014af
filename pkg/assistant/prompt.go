package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
)

// systemInstruction builds the standing instruction for one request. The
// current date and the full snapshot are embedded so the model can resolve
// relative dates and name existing entities when it emits removals.
func systemInstruction(s agenda.State, now time.Time) string {
	s.Init()
	snapshot, err := json.Marshal(s)
	if err != nil {
		snapshot = []byte("{}")
	}

	b := strings.Builder{}
	b.WriteString("You are the planning assistant for a personal agenda.\n")
	b.WriteString("The user may ask you to ADD, CHANGE, or REMOVE tasks, weekly schedule blocks, notes, and hobbies.\n")
	b.WriteString("Use the provided functions for every mutation; answer in plain text when no change is requested.\n")
	b.WriteString("To change an existing item, remove the old one and add the new one, in that order.\n")
	b.WriteString("When removing, copy names and weekday spellings exactly as they appear in the current state.\n")
	fmt.Fprintf(&b, "Today is %s.\n", now.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "Current state: %s\n", snapshot)
	return b.String()
}
