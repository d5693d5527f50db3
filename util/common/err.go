package common

import (
	"errors"
	"fmt"

	"bookkeeper/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func NewError(a ...any) error {
	msg := fmt.Sprintln(a...)
	return errors.New(msg)
}

// Combine merges multiple errors into one, ignoring nils.
func Combine(errs ...error) error {
	errorMsg := ""
	for _, err := range errs {
		if err != nil {
			if errorMsg != "" {
				errorMsg += ", "
			}
			errorMsg += err.Error()
		}
	}
	if errorMsg != "" {
		return errors.New(errorMsg)
	}
	return nil
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
