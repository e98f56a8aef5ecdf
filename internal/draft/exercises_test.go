package draft

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-console/internal/domain"
)

func rows(names ...string) []domain.Exercise {
	out := make([]domain.Exercise, len(names))
	for i, n := range names {
		out[i] = domain.Exercise{Name: n, Sets: 3, Reps: 10, RestTime: 60}
	}
	return out
}

func TestAppendAddsDefaultRowAtEnd(t *testing.T) {
	list := rows("Squat")
	out := Append(list)

	require.Len(t, out, 2)
	assert.Equal(t, "Squat", out[0].Name)
	assert.Equal(t, domain.DefaultExercise(), out[1])
	assert.Len(t, list, 1, "input must not change")
}

func TestAppendThenRemoveKeepsOrder(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for k := 0; k < n; k++ {
			base := rows([]string{"A", "B", "C", "D"}[:n]...)
			appended := Append(base)
			out, ok := RemoveAt(appended, k)
			require.True(t, ok)
			require.Len(t, out, n)

			for i := 0; i < k; i++ {
				assert.Equal(t, appended[i], out[i])
			}
			for i := k; i < n; i++ {
				assert.Equal(t, appended[i+1], out[i])
			}
		}
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	list := rows("A", "B")
	for _, idx := range []int{-1, 2, 10} {
		out, ok := RemoveAt(list, idx)
		assert.False(t, ok)
		assert.Equal(t, list, out)
	}
}

func TestSetField(t *testing.T) {
	list := rows("A", "B")

	out, err := SetField(list, 1, FieldName, "Deadlift")
	require.NoError(t, err)
	assert.Equal(t, "Deadlift", out[1].Name)
	assert.Equal(t, "B", list[1].Name, "input must not change")
	assert.Equal(t, list[0], out[0])

	out, err = SetField(out, 1, FieldSets, "5")
	require.NoError(t, err)
	out, err = SetField(out, 1, FieldReps, float64(3))
	require.NoError(t, err)
	out, err = SetField(out, 1, FieldRestTime, json.Number("180"))
	require.NoError(t, err)
	assert.Equal(t, domain.Exercise{Name: "Deadlift", Sets: 5, Reps: 3, RestTime: 180}, out[1])
}

func TestSetFieldErrors(t *testing.T) {
	list := rows("A")

	_, err := SetField(list, 3, FieldName, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = SetField(list, 0, "weight", 10)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = SetField(list, 0, FieldSets, "many")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = SetField(list, 0, FieldReps, 2.5)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = SetField(list, 0, FieldName, 12)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseExerciseField(t *testing.T) {
	f, err := ParseExerciseField("restTime")
	require.NoError(t, err)
	assert.Equal(t, FieldRestTime, f)

	_, err = ParseExerciseField("rest")
	assert.ErrorIs(t, err, ErrUnknownField)
}
