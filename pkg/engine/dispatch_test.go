package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

func testDispatcher() Dispatcher {
	return Dispatcher{Normalizer: fixedNormalizer(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))}
}

func TestApplyAddsTasks(t *testing.T) {
	c := NewContainer(agenda.NewState(), nil)
	d := testDispatcher()

	report := d.Apply(c, []command.Command{{
		Kind: command.AddTasks,
		Tasks: []command.TaskItem{
			{Name: "Math Homework"},
			{Name: "History Essay"},
		},
	}})

	assert.Equal(t, Report{Applied: 1}, report)
	s := c.Load()
	require.Len(t, s.Tasks, 2)
	assert.Equal(t, "Math Homework", s.Tasks[0].Name)
	assert.Equal(t, "History Essay", s.Tasks[1].Name)
	assert.NotEqual(t, s.Tasks[0].ID, s.Tasks[1].ID)
}

func TestApplyUnknownKindSkipsNotFails(t *testing.T) {
	c := NewContainer(agenda.NewState(), nil)
	d := testDispatcher()

	report := d.Apply(c, []command.Command{
		{Kind: command.Kind("definitely_not_a_tool")},
		{Kind: command.AddNotes, Texts: []string{"still runs"}},
	})

	assert.Equal(t, Report{Applied: 1, Skipped: 1}, report)
	s := c.Load()
	require.Len(t, s.Notes, 1)
	assert.Equal(t, "still runs", s.Notes[0].Content)
}

func TestApplyIsOrderSensitive(t *testing.T) {
	// remove-then-add in one batch: the remove runs against the state before
	// the add, so the new entity survives its own fragment.
	init := agenda.NewState()
	init.Hobbies = append(init.Hobbies, agenda.Hobby{ID: "h0", Name: "chess club"})
	c := NewContainer(init, nil)
	d := testDispatcher()

	d.Apply(c, []command.Command{
		{Kind: command.RemoveHobbies, Criteria: []string{"chess"}},
		{Kind: command.AddHobbies, Texts: []string{"chess"}},
	})

	s := c.Load()
	require.Len(t, s.Hobbies, 1)
	assert.Equal(t, "chess", s.Hobbies[0].Name)
	assert.NotEqual(t, "h0", s.Hobbies[0].ID)
}

func TestApplyLaterCommandsSeeEarlierEffects(t *testing.T) {
	c := NewContainer(agenda.NewState(), nil)
	d := testDispatcher()

	d.Apply(c, []command.Command{
		{Kind: command.AddNotes, Texts: []string{"temp: move this"}},
		{Kind: command.RemoveNotes, Criteria: []string{"temp:"}},
	})

	assert.Empty(t, c.Load().Notes)
}

func TestApplyObservesInterleavedUserEdit(t *testing.T) {
	// A user edit committed between two commands of one batch is visible to
	// the second command: transitions run against the latest state, not a
	// snapshot captured when the batch began.
	c := NewContainer(agenda.NewState(), nil)
	d := testDispatcher()

	d.Apply(c, []command.Command{{Kind: command.AddNotes, Texts: []string{"from assistant"}}})
	c.Update(func(s agenda.State) agenda.State {
		s.Notes = append(s.Notes, agenda.Note{ID: "user-1", Content: "from user"})
		return s
	})
	d.Apply(c, []command.Command{{Kind: command.RemoveNotes, Criteria: []string{"from user"}}})

	s := c.Load()
	require.Len(t, s.Notes, 1)
	assert.Equal(t, "from assistant", s.Notes[0].Content)
}

func TestApplyTouchesOnlyTargetCollection(t *testing.T) {
	init := agenda.NewState()
	init.Tasks = append(init.Tasks, agenda.Task{ID: "t1", Name: "math"})
	init.Notes = append(init.Notes, agenda.Note{ID: "n1", Content: "math"})
	init.Hobbies = append(init.Hobbies, agenda.Hobby{ID: "h1", Name: "math puzzles"})
	c := NewContainer(init, nil)

	testDispatcher().Apply(c, []command.Command{
		{Kind: command.RemoveTasks, Criteria: []string{"math"}},
	})

	s := c.Load()
	assert.Empty(t, s.Tasks)
	assert.Len(t, s.Notes, 1)
	assert.Len(t, s.Hobbies, 1)
}

func TestApplyEmptyBatch(t *testing.T) {
	c := NewContainer(agenda.NewState(), nil)
	report := testDispatcher().Apply(c, nil)
	assert.Equal(t, Report{}, report)
}

func TestApplySchedule(t *testing.T) {
	c := NewContainer(agenda.NewState(), nil)
	d := testDispatcher()

	d.Apply(c, []command.Command{
		{Kind: command.AddSchedule, Events: []command.EventItem{
			{Day: "Monday", Start: "09:00", End: "10:30", Activity: "Algebra Review", Kind: "class"},
			{Day: "Monday", Start: "11:00", End: "12:00", Activity: "Biology", Kind: "class"},
		}},
		{Kind: command.RemoveSchedule, EventCriteria: []command.EventCriterion{
			{Day: "Monday", Activity: "Algebra"},
		}},
	})

	s := c.Load()
	require.Len(t, s.Schedule, 1)
	assert.Equal(t, "Biology", s.Schedule[0].Activity)
}
