package command

import (
	"math"
	"strconv"
)

// Decode turns a raw tool call into a Command. It reports false for an
// unknown name or a required argument that is absent or not a list; the
// caller treats that single call as a no-op and keeps going. Item lists are
// decoded leniently: non-object entries in an object list (and non-string
// entries in a string list) are skipped rather than poisoning the call.
func Decode(name string, args map[string]any) (Command, bool) {
	switch Kind(name) {
	case AddTasks:
		items, ok := listArg(args, "tasks")
		if !ok {
			return Command{}, false
		}
		return Command{Kind: AddTasks, Tasks: taskItems(items)}, true

	case RemoveTasks:
		criteria, ok := stringList(args, "names")
		if !ok {
			return Command{}, false
		}
		return Command{Kind: RemoveTasks, Criteria: criteria}, true

	case AddSchedule:
		items, ok := listArg(args, "events")
		if !ok {
			return Command{}, false
		}
		return Command{Kind: AddSchedule, Events: eventItems(items)}, true

	case RemoveSchedule:
		items, ok := listArg(args, "events")
		if !ok {
			return Command{}, false
		}
		return Command{Kind: RemoveSchedule, EventCriteria: eventCriteria(items)}, true

	case AddNotes:
		texts, ok := stringList(args, "notes")
		if !ok {
			return Command{}, false
		}
		return Command{Kind: AddNotes, Texts: texts}, true

	case RemoveNotes:
		criteria, ok := stringList(args, "fragments")
		if !ok {
			return Command{}, false
		}
		return Command{Kind: RemoveNotes, Criteria: criteria}, true

	case AddHobbies:
		texts, ok := stringList(args, "hobbies")
		if !ok {
			return Command{}, false
		}
		return Command{Kind: AddHobbies, Texts: texts}, true

	case RemoveHobbies:
		criteria, ok := stringList(args, "names")
		if !ok {
			return Command{}, false
		}
		return Command{Kind: RemoveHobbies, Criteria: criteria}, true
	}

	return Command{}, false
}

func listArg(args map[string]any, key string) ([]any, bool) {
	if args == nil {
		return nil, false
	}
	list, ok := args[key].([]any)
	return list, ok
}

func stringList(args map[string]any, key string) ([]string, bool) {
	list, ok := listArg(args, key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

func taskItems(list []any) []TaskItem {
	out := make([]TaskItem, 0, len(list))
	for _, v := range list {
		obj, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, TaskItem{
			Name:        stringField(obj, "name"),
			Recommended: stringField(obj, "recommended"),
			Due:         stringField(obj, "due"),
			Criticality: intField(obj, "criticality"),
			Priority:    stringField(obj, "priority"),
		})
	}
	return out
}

func eventItems(list []any) []EventItem {
	out := make([]EventItem, 0, len(list))
	for _, v := range list {
		obj, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, EventItem{
			Day:      stringField(obj, "day"),
			Start:    stringField(obj, "start"),
			End:      stringField(obj, "end"),
			Activity: stringField(obj, "activity"),
			Kind:     stringField(obj, "kind"),
			Modality: stringField(obj, "modality"),
		})
	}
	return out
}

func eventCriteria(list []any) []EventCriterion {
	out := make([]EventCriterion, 0, len(list))
	for _, v := range list {
		obj, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, EventCriterion{
			Day:      stringField(obj, "day"),
			Activity: stringField(obj, "activity"),
		})
	}
	return out
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// intField tolerates the number representations a JSON decoder or a model
// can produce: float64, integer types, or a numeric string.
func intField(obj map[string]any, key string) int {
	switch v := obj[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
