package domain

import (
	"math"
	"regexp"
	"time"
)

// Gender of a student.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Student is a trainee managed by the trainer. Students are independent of planners.
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Age       int       `json:"age" validate:"min=1"`
	Weight    float64   `json:"weight" validate:"gt=0"` // Kilograms
	Height    float64   `json:"height" validate:"gt=0"` // Meters
	Gender    Gender    `json:"gender" validate:"oneof=M F"`
	Phone     string    `json:"phone" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Student) Validate() error {
	return validate.Struct(s)
}

// BMI is the student's body mass index rounded to one decimal.
func (s *Student) BMI() float64 {
	return CalculateBMI(s.Weight, s.Height)
}

// CalculateBMI returns weight / height² rounded to one decimal place.
// A non-positive height yields 0.
func CalculateBMI(weight, height float64) float64 {
	if height <= 0 {
		return 0
	}
	bmi := weight / (height * height)
	return math.Round(bmi*10) / 10
}

var (
	nonDigits  = regexp.MustCompile(`\D`)
	phoneShape = regexp.MustCompile(`^(\d{2})(\d{5})(\d{4})$`)
)

// FormatPhoneNumber renders an 11-digit mobile number as "(dd) ddddd-dddd".
// Anything else is returned unchanged.
func FormatPhoneNumber(value string) string {
	cleaned := nonDigits.ReplaceAllString(value, "")
	m := phoneShape.FindStringSubmatch(cleaned)
	if m == nil {
		return value
	}
	return "(" + m[1] + ") " + m[2] + "-" + m[3]
}
