package task

import "taskboard/internal/model"

// ErrEmptyTitle matches model.ErrValidation under errors.Is.
var ErrEmptyTitle error = validationError{msg: "task title cannot be empty"}

type validationError struct {
	msg string
}

func (e validationError) Error() string { return e.msg }

func (e validationError) Unwrap() error { return model.ErrValidation }
