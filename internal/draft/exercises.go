// Package draft holds the staged, not-yet-committed editor state of the
// console: the planner and day modals and the exercise rows being edited.
// Every transition returns a new value; nothing here touches the store.
package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"alcyxob/trainer-console/internal/domain"
)

var (
	ErrIndexOutOfRange = errors.New("exercise index out of range")
	ErrUnknownField    = errors.New("unknown exercise field")
	ErrInvalidValue    = errors.New("invalid value for exercise field")
)

// ExerciseField names one editable attribute of an exercise row.
type ExerciseField string

const (
	FieldName     ExerciseField = "name"
	FieldSets     ExerciseField = "sets"
	FieldReps     ExerciseField = "reps"
	FieldRestTime ExerciseField = "restTime"
)

// ParseExerciseField maps a wire name to an ExerciseField.
func ParseExerciseField(s string) (ExerciseField, error) {
	switch f := ExerciseField(s); f {
	case FieldName, FieldSets, FieldReps, FieldRestTime:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Append adds a default row at the end of list.
func Append(list []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(list)+1)
	out = append(out, list...)
	return append(out, domain.DefaultExercise())
}

// RemoveAt drops the row at index, shifting later rows down by one. If index
// is out of range the list is returned unchanged and ok is false.
func RemoveAt(list []domain.Exercise, index int) (out []domain.Exercise, ok bool) {
	if index < 0 || index >= len(list) {
		return list, false
	}
	out = make([]domain.Exercise, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	return out, true
}

// SetField replaces the row at index with a copy whose field holds value.
// Numeric fields accept Go integers, JSON numbers and decimal strings; range
// checks are left to commit time. On error list is returned unchanged.
func SetField(list []domain.Exercise, index int, field ExerciseField, value any) ([]domain.Exercise, error) {
	if index < 0 || index >= len(list) {
		return list, ErrIndexOutOfRange
	}
	row := list[index]
	switch field {
	case FieldName:
		s, ok := value.(string)
		if !ok {
			return list, fmt.Errorf("%w: name must be a string", ErrInvalidValue)
		}
		row.Name = s
	case FieldSets, FieldReps, FieldRestTime:
		n, err := toInt(value)
		if err != nil {
			return list, fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
		}
		switch field {
		case FieldSets:
			row.Sets = n
		case FieldReps:
			row.Reps = n
		default:
			row.RestTime = n
		}
	default:
		return list, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	out := domain.CloneExercises(list)
	out[index] = row
	return out, nil
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errors.New("not a whole number")
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		return int(n), err
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}
