package order

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// RunStatus is the execution state shared by workflow instances and task instances.
//
// Legal task instance transitions:
//
//	from \ to      PENDING   IN_PROGRESS   COMPLETED
//	PENDING        yes       yes (1)       no
//	IN_PROGRESS    yes       yes           yes (2)
//	COMPLETED      no        no            no
//
//	(1) only while no other task of the workflow instance is IN_PROGRESS
//	(2) triggers the completion cascade
type RunStatus int

const (
	// RunUnknown catches uninitialized RunStatus values.
	RunUnknown RunStatus = iota

	// RunPending is the initial status of every instance.
	RunPending

	// RunInProgress marks the instance currently worked on.
	RunInProgress

	// RunCompleted is final.
	RunCompleted
)

func getRunStatusStrings() map[RunStatus]string {
	return map[RunStatus]string{
		RunUnknown:    "UNKNOWN",
		RunPending:    "PENDING",
		RunInProgress: "IN_PROGRESS",
		RunCompleted:  "COMPLETED",
	}
}

func getValidRunStatusStrings() map[RunStatus]string {
	//nolint:exhaustive // RunUnknown is intentionally excluded as it's invalid
	return map[RunStatus]string{
		RunPending:    "PENDING",
		RunInProgress: "IN_PROGRESS",
		RunCompleted:  "COMPLETED",
	}
}

// ParseRunStatus converts the persisted or wire representation ("PENDING") into a RunStatus.
func ParseRunStatus(s string) (RunStatus, error) {
	for status, str := range getValidRunStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return RunUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid run status", s))
}

// Validate checks that the status is one of the defined run states.
func (s RunStatus) Validate() error {
	if _, ok := getValidRunStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid run status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s RunStatus) String() string {
	if str, ok := getRunStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateStartTarget checks the status requested when starting a workflow
// instance. Only PENDING and IN_PROGRESS may be requested; completion is
// reserved to the cascade.
func (s RunStatus) ValidateStartTarget() error {
	if s != RunPending && s != RunInProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start a workflow instance", s),
		)
	}
	return nil
}

// ValidateTransition checks that a task instance may move from s to next.
// The single-active-task rule depends on sibling instances and is checked by
// the workflow instance.
func (s RunStatus) ValidateTransition(next RunStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}

	switch {
	case s == RunCompleted:
		return errs.NewStateIsInvalidErrorWithCause(
			"task instance status",
			fmt.Errorf("task instance is %s - cannot move to %s", s, next),
		)
	case s == RunPending && next == RunCompleted:
		return errs.NewStateIsInvalidErrorWithCause(
			"task instance status",
			fmt.Errorf("task instance is %s - it must be %s before %s", s, RunInProgress, next),
		)
	case s == RunUnknown:
		return s.Validate()
	}

	return nil
}
