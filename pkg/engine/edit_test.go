package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
)

func editState() agenda.State {
	s := agenda.NewState()
	s.Tasks = append(s.Tasks, agenda.Task{ID: "t1", Name: "math", Status: agenda.StatusPending})
	s.Schedule = append(s.Schedule, agenda.ScheduleEvent{ID: "e1", Day: "Monday", Activity: "Algebra"})
	s.Notes = append(s.Notes, agenda.Note{ID: "n1", Content: "pay tuition"})
	s.Hobbies = append(s.Hobbies, agenda.Hobby{ID: "h1", Name: "chess"})
	return s
}

func TestSetTaskStatusAnyToAny(t *testing.T) {
	c := NewContainer(editState(), nil)

	s := c.Update(SetTaskStatus("t1", agenda.StatusDone))
	assert.Equal(t, agenda.StatusDone, s.Tasks[0].Status)

	// Done is not terminal.
	s = c.Update(SetTaskStatus("t1", agenda.StatusPending))
	assert.Equal(t, agenda.StatusPending, s.Tasks[0].Status)
}

func TestSetTaskStatusUnknownIDIsNoop(t *testing.T) {
	c := NewContainer(editState(), nil)
	s := c.Update(SetTaskStatus("missing", agenda.StatusDone))
	assert.Equal(t, agenda.StatusPending, s.Tasks[0].Status)
}

func TestUpdateTaskPreservesID(t *testing.T) {
	c := NewContainer(editState(), nil)
	s := c.Update(UpdateTask("t1", func(task *agenda.Task) {
		task.Name = "advanced math"
		task.ID = "forged"
	}))
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, "advanced math", s.Tasks[0].Name)
	assert.Equal(t, "t1", s.Tasks[0].ID)
}

func TestToggleHobby(t *testing.T) {
	c := NewContainer(editState(), nil)
	s := c.Update(ToggleHobby("h1"))
	assert.True(t, s.Hobbies[0].Done)
	s = c.Update(ToggleHobby("h1"))
	assert.False(t, s.Hobbies[0].Done)
}

func TestRemoveByIDAcrossCollections(t *testing.T) {
	for _, id := range []string{"t1", "e1", "n1", "h1"} {
		c := NewContainer(editState(), nil)
		s := c.Update(RemoveByID(id))
		total := len(s.Tasks) + len(s.Schedule) + len(s.Notes) + len(s.Hobbies)
		assert.Equal(t, 3, total, "removing %s should drop exactly one entity", id)
	}
}

func TestRemoveByIDMissingIsNoop(t *testing.T) {
	c := NewContainer(editState(), nil)
	s := c.Update(RemoveByID("missing"))
	total := len(s.Tasks) + len(s.Schedule) + len(s.Notes) + len(s.Hobbies)
	assert.Equal(t, 4, total)
}

func TestClearSchedule(t *testing.T) {
	c := NewContainer(editState(), nil)
	s := c.Update(ClearSchedule())
	assert.Empty(t, s.Schedule)
	assert.NotNil(t, s.Schedule)
	assert.Len(t, s.Tasks, 1)
}
