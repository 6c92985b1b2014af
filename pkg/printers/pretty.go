package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-4dca-a1b2-09c8e3f4d511  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) Tasks(tasks ...agenda.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold("ID"), bold("Task"), bold("Start"), bold("Due"), bold("Crit"), bold("Priority"), bold("Status"))
		for i := range tasks {
			t := &tasks[i]
			name, start, due, crit, prio, status := t.Row()
			tbl.AddRow(t.ID, name, start, due, crit, prio, status)
		}
	} else {
		tbl.AddRow(bold("Task"), bold("Start"), bold("Due"), bold("Crit"), bold("Priority"), bold("Status"))
		for i := range tasks {
			name, start, due, crit, prio, status := tasks[i].Row()
			tbl.AddRow(name, start, due, crit, prio, status)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) Schedule(events ...agenda.ScheduleEvent) {
	if len(events) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold("ID"), bold("Day"), bold("Hours"), bold("Activity"), bold("Kind"), bold("Modality"))
		for i := range events {
			e := &events[i]
			day, hours, activity, kind, modality := e.Row()
			tbl.AddRow(e.ID, day, hours, activity, kind, modality)
		}
	} else {
		tbl.AddRow(bold("Day"), bold("Hours"), bold("Activity"), bold("Kind"), bold("Modality"))
		for i := range events {
			day, hours, activity, kind, modality := events[i].Row()
			tbl.AddRow(day, hours, activity, kind, modality)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) Notes(notes ...agenda.Note) {
	if len(notes) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	t := color.New()
	for i := range notes {
		n := &notes[i]
		if pp.ShowID {
			_, _ = y.Print(n.ID)
			_, _ = y.Print("  ")
		}
		_, _ = t.Printf("- %s\n", n.Content)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) Hobbies(hobbies ...agenda.Hobby) {
	if len(hobbies) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	t := color.New()
	for i := range hobbies {
		h := &hobbies[i]
		if pp.ShowID {
			_, _ = y.Print(h.ID)
			_, _ = y.Print("  ")
		}
		mark := " "
		if h.Done {
			mark = "x"
		}
		_, _ = t.Printf("[%s] %s\n", mark, h.Name)
	}
	fmt.Println("")
}

// State renders all four collections.
func (pp *PrettyPrint) State(s agenda.State) {
	pp.Title("Tasks")
	pp.Tasks(s.Tasks...)
	pp.Title("Schedule")
	pp.Schedule(s.Schedule...)
	pp.Title("Notes")
	pp.Notes(s.Notes...)
	pp.Title("Hobbies")
	pp.Hobbies(s.Hobbies...)
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
