package employee

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// millisPerYear is the length of a 365-day year. Leap days are not counted.
const millisPerYear = 1000 * 60 * 60 * 24 * 365

// Employee is an immutable record of a person employed in the organisation.
type Employee struct {
	firstName  string
	middleName *string
	lastName   string

	dateOfBirthMillis   int64
	dateOfJoiningMillis int64

	role Role
}

// New constructs an Employee. Names and dates are stored as given; only the
// role is checked, since an Employee must always hold one of the defined roles.
func New(
	firstName string,
	middleName *string,
	lastName string,
	dateOfBirthMillis int64,
	dateOfJoiningMillis int64,
	role Role,
) (*Employee, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}

	var middle *string
	if middleName != nil {
		m := *middleName
		middle = &m
	}

	return &Employee{
		firstName:           firstName,
		middleName:          middle,
		lastName:            lastName,
		dateOfBirthMillis:   dateOfBirthMillis,
		dateOfJoiningMillis: dateOfJoiningMillis,
		role:                role,
	}, nil
}

func (e *Employee) FirstName() string {
	return e.firstName
}

// MiddleName returns the middle name and whether one was supplied.
func (e *Employee) MiddleName() (string, bool) {
	if e.middleName == nil {
		return "", false
	}
	return *e.middleName, true
}

func (e *Employee) LastName() string {
	return e.lastName
}

func (e *Employee) Role() Role {
	return e.role
}

// FullName joins first, middle and last name with single spaces. An absent
// middle name contributes an empty string, which leaves two spaces between
// the first and last name. Use DisplayName for the collapsed form.
func (e *Employee) FullName() string {
	middle, _ := e.MiddleName()
	return e.firstName + " " + middle + " " + e.lastName
}

// DisplayName joins the non-empty name parts with single spaces.
func (e *Employee) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{e.firstName, derefOrEmpty(e.middleName), e.lastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// BirthDate returns the birth instant in the local time zone.
func (e *Employee) BirthDate() time.Time {
	return time.UnixMilli(e.dateOfBirthMillis)
}

// JoiningDate returns the joining instant in the local time zone.
func (e *Employee) JoiningDate() time.Time {
	return time.UnixMilli(e.dateOfJoiningMillis)
}

func (e *Employee) DateOfBirthMillis() int64 {
	return e.dateOfBirthMillis
}

func (e *Employee) DateOfJoiningMillis() int64 {
	return e.dateOfJoiningMillis
}

// Age returns the number of whole 365-day years elapsed since birth, measured
// against the current wall clock.
func (e *Employee) Age() int {
	return e.AgeAt(time.Now())
}

// AgeAt is Age measured against now instead of the wall clock.
func (e *Employee) AgeAt(now time.Time) int {
	elapsed := now.UnixMilli() - e.dateOfBirthMillis
	return int(math.Floor(float64(elapsed) / float64(millisPerYear)))
}

func (e *Employee) String() string {
	return fmt.Sprintf("%s [%s]", e.FullName(), e.role)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
