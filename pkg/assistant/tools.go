package assistant

import (
	"github.com/google/generative-ai-go/genai"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

// declarations returns the eight function declarations offered to the model,
// one per command kind. The argument names here must line up with what
// command.Decode expects.
func declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        string(command.AddTasks),
			Description: "Add one or more tasks to the planner.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"tasks": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"name":        {Type: genai.TypeString},
								"recommended": {Type: genai.TypeString, Description: "Recommended start date, YYYY-MM-DD"},
								"due":         {Type: genai.TypeString, Description: "Due date, YYYY-MM-DD"},
								"criticality": {Type: genai.TypeInteger, Description: "1-10"},
								"priority": {
									Type: genai.TypeString,
									Enum: []string{
										agenda.PriorityLow.String(),
										agenda.PriorityMedium.String(),
										agenda.PriorityHigh.String(),
									},
								},
							},
							Required: []string{"name"},
						},
					},
				},
				Required: []string{"tasks"},
			},
		},
		{
			Name:        string(command.RemoveTasks),
			Description: "Remove tasks whose name contains any of the given fragments.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"names": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"names"},
			},
		},
		{
			Name:        string(command.AddSchedule),
			Description: "Add weekly schedule blocks (classes, study sessions, breaks).",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"events": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"day":      {Type: genai.TypeString, Description: "Full weekday name"},
								"start":    {Type: genai.TypeString, Description: "HH:MM"},
								"end":      {Type: genai.TypeString, Description: "HH:MM"},
								"activity": {Type: genai.TypeString},
								"kind": {
									Type: genai.TypeString,
									Enum: []string{
										string(agenda.KindClass),
										string(agenda.KindStudy),
										string(agenda.KindBreak),
									},
								},
								"modality": {
									Type: genai.TypeString,
									Enum: []string{
										string(agenda.ModalityVirtual),
										string(agenda.ModalityHybrid),
										string(agenda.ModalityInPerson),
									},
								},
							},
							Required: []string{"day", "start", "end", "activity", "kind"},
						},
					},
				},
				Required: []string{"events"},
			},
		},
		{
			Name:        string(command.RemoveSchedule),
			Description: "Remove schedule blocks by day and activity.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"events": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"day":      {Type: genai.TypeString},
								"activity": {Type: genai.TypeString},
							},
							Required: []string{"day", "activity"},
						},
					},
				},
				Required: []string{"events"},
			},
		},
		{
			Name:        string(command.AddNotes),
			Description: "Add reminders or notes.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"notes": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"notes"},
			},
		},
		{
			Name:        string(command.RemoveNotes),
			Description: "Remove notes whose content contains any of the given fragments.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fragments": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"fragments"},
			},
		},
		{
			Name:        string(command.AddHobbies),
			Description: "Add leisure activities.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"hobbies": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"hobbies"},
			},
		},
		{
			Name:        string(command.RemoveHobbies),
			Description: "Remove hobbies whose name contains any of the given fragments.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"names": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"names"},
			},
		},
	}
}
