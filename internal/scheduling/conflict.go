package scheduling

import (
	"sort"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

// PriorityRelation classifies an existing schedule's priority relative to the
// candidate it conflicts with.
type PriorityRelation string

const (
	RelationSamePriority   PriorityRelation = "same_priority"
	RelationHigherPriority PriorityRelation = "higher_priority"
	RelationLowerPriority  PriorityRelation = "lower_priority"
)

// ConflictResult describes one existing schedule whose scope and time window
// both overlap the candidate's.
type ConflictResult struct {
	ScheduleID int              `json:"schedule_id"`
	Name       string           `json:"name"`
	Relation   PriorityRelation `json:"relation"`
}

// FindConflicts checks a candidate schedule against the organization's
// existing schedules and reports every active one whose target scope, date
// range, time-of-day range and weekday set all overlap the candidate's.
//
// The candidate's own stored version (matched by ID) is skipped so edits do
// not conflict with themselves. The result is advisory: the caller decides
// whether a conflict blocks the save. Output is sorted by schedule ID so the
// surfaced warnings are reproducible.
func FindConflicts(candidate model.Schedule, existing []model.Schedule, dir ScreenDirectory) []ConflictResult {
	candidateScope := candidate.Scope()

	var out []ConflictResult
	for _, other := range existing {
		if !other.IsActive || other.ID == candidate.ID {
			continue
		}
		if !ScopesOverlap(candidateScope, other.Scope(), dir) {
			continue
		}
		if !DatesOverlap(candidate.StartDate, candidate.EndDate, other.StartDate, other.EndDate) {
			continue
		}
		if !TimeRangesOverlap(candidate.StartTime, candidate.EndTime, other.StartTime, other.EndTime) {
			continue
		}
		if !WeekdaysOverlap(candidate.DaysOfWeek, other.DaysOfWeek) {
			continue
		}

		relation := RelationSamePriority
		switch {
		case other.Priority > candidate.Priority:
			relation = RelationHigherPriority
		case other.Priority < candidate.Priority:
			relation = RelationLowerPriority
		}
		out = append(out, ConflictResult{
			ScheduleID: other.ID,
			Name:       other.Name,
			Relation:   relation,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ScheduleID < out[j].ScheduleID })
	return out
}
