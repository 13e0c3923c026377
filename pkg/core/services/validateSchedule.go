package services

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ValidationReport summarises problems in a schedule document that scoring tolerates
type ValidationReport struct {
	Schedule *Schedule

	// Incompatible lists placements outside the talk type's timeslots or rooms
	Incompatible []string
	// Unassigned lists talks missing a timeslot or a room
	Unassigned []string
	// DanglingPrerequisites lists prerequisite codes that name no talk
	DanglingPrerequisites []string
	// MovedPinned lists pinned talks placed away from their published timeslot or room
	MovedPinned []string
}

// IsValid returns true when every placement is compatible with its talk type
func (r *ValidationReport) IsValid() bool {
	return len(r.Incompatible) == 0
}

// ValidateSchedule loads a schedule and checks it beyond what scoring requires
func ValidateSchedule(path string, logger *zap.Logger) (*ValidationReport, error) {
	schedule, err := LoadSchedule(path, logger)
	if err != nil {
		return nil, err
	}

	problem := schedule.Problem
	report := &ValidationReport{Schedule: schedule}

	report.Incompatible = lo.Map(problem.CheckCompatibility(schedule.Assignment), func(err error, _ int) string {
		return err.Error()
	})

	for _, scheduled := range schedule.Assignment.Scheduled() {
		if !scheduled.IsAssigned() {
			report.Unassigned = append(report.Unassigned, scheduled.Code)
		}

		for _, code := range scheduled.PrerequisiteTalks.Sorted() {
			if problem.Talk(code) == nil {
				report.DanglingPrerequisites = append(report.DanglingPrerequisites,
					fmt.Sprintf("talk %s requires unknown talk %s", scheduled.Code, code))
			}
		}

		if scheduled.Pinned {
			if scheduled.PublishedTimeslot != nil && !scheduled.PublishedTimeslot.Same(scheduled.Timeslot) {
				report.MovedPinned = append(report.MovedPinned,
					fmt.Sprintf("pinned talk %s moved away from timeslot %s", scheduled.Code, scheduled.PublishedTimeslot.ID))
			}
			if scheduled.PublishedRoom != nil && scheduled.PublishedRoom != scheduled.Room {
				report.MovedPinned = append(report.MovedPinned,
					fmt.Sprintf("pinned talk %s moved away from room %s", scheduled.Code, scheduled.PublishedRoom.ID))
			}
		}
	}

	logger.Debug("Schedule validated",
		zap.String("schedule_id", schedule.ID),
		zap.Int("incompatible", len(report.Incompatible)),
		zap.Int("unassigned", len(report.Unassigned)),
		zap.Int("dangling_prerequisites", len(report.DanglingPrerequisites)),
		zap.Int("moved_pinned", len(report.MovedPinned)))

	return report, nil
}
