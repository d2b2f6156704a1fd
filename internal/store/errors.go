package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Error is a coded failure raised by the store. The Code is stable and is
// what the API layer maps to an HTTP status; Message is human-readable.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUserNotFound            = &Error{Code: "USER_NOT_FOUND", Message: "user not found"}
	ErrWorkoutNotFound         = &Error{Code: "WORKOUT_NOT_FOUND", Message: "workout not found"}
	ErrExerciseNotFound        = &Error{Code: "EXERCISE_NOT_FOUND", Message: "exercise not found"}
	ErrWorkoutExerciseNotFound = &Error{Code: "WORKOUT_EXERCISE_NOT_FOUND", Message: "exercise is not part of this workout"}
	ErrSetNotFound             = &Error{Code: "SET_NOT_FOUND", Message: "set not found"}
	ErrBiometricsNotFound      = &Error{Code: "USER_BIOMETRICS_NOT_FOUND", Message: "user biometrics not found"}

	ErrEmailAlreadyExists    = &Error{Code: "EMAIL_ALREADY_EXISTS", Message: "a user with this email already exists"}
	ErrUsernameAlreadyExists = &Error{Code: "USERNAME_ALREADY_EXISTS", Message: "a user with this username already exists"}
	ErrUniqueViolation       = &Error{Code: "UNIQUE_CONSTRAINT_VIOLATION", Message: "unique constraint violation"}
	ErrNotNullConstraint     = &Error{Code: "NOT_NULL_CONSTRAINT", Message: "a required field is missing"}

	ErrNoFieldsToUpdate   = &Error{Code: "NO_FIELDS_TO_UPDATE", Message: "no fields provided to update"}
	ErrInvalidCredentials = &Error{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
)

// mapConstraintError translates SQLite constraint failures into coded store
// errors. Unique violations are disambiguated by the column named in the
// driver message (e.g. "UNIQUE constraint failed: users.email"). Anything
// that is not a constraint failure passes through unchanged.
func mapConstraintError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.email"):
			return ErrEmailAlreadyExists
		case strings.Contains(msg, "users.username"):
			return ErrUsernameAlreadyExists
		default:
			return ErrUniqueViolation
		}
	case sqlite3.ErrConstraintNotNull:
		return ErrNotNullConstraint
	case sqlite3.ErrConstraintForeignKey:
		return ErrUserNotFound
	}
	return err
}
