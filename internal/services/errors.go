package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every business-rule failure wraps exactly one of these so
// handlers can map it to a status code with errors.Is, while the wrapped
// sentinel keeps the operation-specific message.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidState     = errors.New("operation not allowed in current state")
	ErrInvalidTarget    = errors.New("referenced user cannot be used")
	ErrConflict         = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
)

var (
	ErrTaskNotFound   = fmt.Errorf("task %w", ErrNotFound)
	ErrReportNotFound = fmt.Errorf("report %w", ErrNotFound)
	ErrUserNotFound   = fmt.Errorf("user %w", ErrNotFound)

	ErrOnlyManagers       = fmt.Errorf("%w: only managers may perform this action", ErrPermissionDenied)
	ErrManagersNotAllowed = fmt.Errorf("%w: managers cannot perform tasks", ErrPermissionDenied)
	ErrNotTaskCreator     = fmt.Errorf("%w: only the task creator may perform this action", ErrPermissionDenied)
	ErrNotTaskPerformer   = fmt.Errorf("%w: only the task performer may perform this action", ErrPermissionDenied)
	ErrUserInactive       = fmt.Errorf("%w: account is inactive", ErrPermissionDenied)
	ErrNotReportParty     = fmt.Errorf("%w: only the report author or the task creator may view this report", ErrPermissionDenied)

	ErrTaskAlreadyAssigned  = fmt.Errorf("%w: task already has a performer", ErrInvalidState)
	ErrTaskAlreadyCompleted = fmt.Errorf("%w: task is already completed", ErrInvalidState)
	ErrTaskNotAssigned      = fmt.Errorf("%w: task has no performer", ErrInvalidState)
	ErrTaskNotCompleted     = fmt.Errorf("%w: task is not completed yet", ErrInvalidState)

	ErrPerformerNotFound  = fmt.Errorf("%w: performer does not exist", ErrInvalidTarget)
	ErrPerformerInactive  = fmt.Errorf("%w: performer is inactive", ErrInvalidTarget)
	ErrPerformerIsManager = fmt.Errorf("%w: performer must not be a manager", ErrInvalidTarget)

	ErrReportExists = fmt.Errorf("report for this task %w", ErrConflict)
	ErrRewardExists = fmt.Errorf("reward for this report %w", ErrConflict)
	ErrTitleTaken   = fmt.Errorf("task title %w", ErrConflict)
	ErrEmailTaken   = fmt.Errorf("account with this email %w", ErrConflict)

	ErrTitleRequired       = fmt.Errorf("%w: title is required", ErrInvalidInput)
	ErrDescriptionRequired = fmt.Errorf("%w: description is required", ErrInvalidInput)
	ErrInvalidDifficulty   = fmt.Errorf("%w: difficulty must be between 1 and 5", ErrInvalidInput)
	ErrInvalidDuration     = fmt.Errorf("%w: expected duration must be positive", ErrInvalidInput)
	ErrReportTextRequired  = fmt.Errorf("%w: report text is required", ErrInvalidInput)
	ErrCommentRequired     = fmt.Errorf("%w: comment is required", ErrInvalidInput)
)
