package domain

import "errors"

// ErrLessonNotFound is returned when a lesson ID cannot be found in the catalog.
var ErrLessonNotFound = errors.New("lesson not found")

// ErrProgressNotFound is returned when a reader has no saved progress.
var ErrProgressNotFound = errors.New("progress not found")

// ErrUnknownPrinciple is returned when a string does not name one of the five principles.
var ErrUnknownPrinciple = errors.New("unknown principle")

// ErrAnswerCount is returned when a quiz submission does not answer every question.
var ErrAnswerCount = errors.New("submission must answer every question")
