package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func strPtr(s string) *string { return &s }

func TestFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		middleName  *string
		wantFull    string
		wantDisplay string
	}{
		{
			name:        "WithoutMiddleName",
			middleName:  nil,
			wantFull:    "Ada  Lovelace",
			wantDisplay: "Ada Lovelace",
		},
		{
			name:        "WithMiddleName",
			middleName:  strPtr("Grace"),
			wantFull:    "Ada Grace Lovelace",
			wantDisplay: "Ada Grace Lovelace",
		},
		{
			name:        "EmptyMiddleName",
			middleName:  strPtr(""),
			wantFull:    "Ada  Lovelace",
			wantDisplay: "Ada Lovelace",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e, err := New("Ada", tc.middleName, "Lovelace", 0, 0, TechLead)
			require.NoError(t, err)

			assert.Equal(t, tc.wantFull, e.FullName())
			assert.Equal(t, tc.wantDisplay, e.DisplayName())
		})
	}
}

func TestNewAcceptsUnvalidatedFields(t *testing.T) {
	t.Parallel()

	// joining before birth and empty names are stored as given
	e, err := New("", nil, "", 2_000, 1_000, Agilist)
	require.NoError(t, err)

	assert.Empty(t, e.FirstName())
	assert.Empty(t, e.LastName())
	assert.Equal(t, int64(2_000), e.DateOfBirthMillis())
	assert.Equal(t, int64(1_000), e.DateOfJoiningMillis())
}

func TestNewRejectsUndefinedRole(t *testing.T) {
	t.Parallel()

	for _, role := range []Role{0, ProductManager + 1, -3} {
		_, err := New("Ada", nil, "Lovelace", 0, 0, role)
		assert.ErrorIs(t, err, ErrUnknownRole, "role %d", int(role))
	}
}

func TestMiddleNameIsCopied(t *testing.T) {
	t.Parallel()

	middle := "Grace"
	e, err := New("Ada", &middle, "Lovelace", 0, 0, BackendDeveloper)
	require.NoError(t, err)

	middle = "Changed"

	got, ok := e.MiddleName()
	assert.True(t, ok)
	assert.Equal(t, "Grace", got)
}

func TestMiddleNameAbsent(t *testing.T) {
	t.Parallel()

	e, err := New("Ada", nil, "Lovelace", 0, 0, BackendDeveloper)
	require.NoError(t, err)

	got, ok := e.MiddleName()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestAgeAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

	for _, years := range []int{0, 1, 18, 30, 65} {
		birth := now.Add(-time.Duration(years) * 365 * day)
		e, err := New("Ada", nil, "Lovelace", birth.UnixMilli(), now.UnixMilli(), FullstackDeveloper)
		require.NoError(t, err)

		assert.Equal(t, years, e.AgeAt(now), "exactly %d 365-day years", years)
		assert.Equal(t, years, e.AgeAt(now.Add(364*day)), "just before the next birthday")
	}
}

func TestAgeAtIsMonotonic(t *testing.T) {
	t.Parallel()

	birth := time.Date(1990, time.February, 28, 0, 0, 0, 0, time.UTC)
	e, err := New("Ada", nil, "Lovelace", birth.UnixMilli(), birth.UnixMilli(), FrontendDeveloper)
	require.NoError(t, err)

	prev := e.AgeAt(birth)
	for now := birth; now.Before(birth.AddDate(40, 0, 0)); now = now.Add(17 * day) {
		age := e.AgeAt(now)
		require.GreaterOrEqual(t, age, prev, "age decreased at %s", now)
		prev = age
	}
}

func TestAgeIgnoresLeapDays(t *testing.T) {
	t.Parallel()

	birth := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	e, err := New("Ada", nil, "Lovelace", birth.UnixMilli(), birth.UnixMilli(), TechLead)
	require.NoError(t, err)

	// 2000..2004 contains two leap days, so four calendar years already
	// exceed four 365-day years by two days.
	assert.Equal(t, 4, e.AgeAt(time.Date(2004, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 4, e.AgeAt(time.Date(2003, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, e.AgeAt(time.Date(2003, time.December, 29, 0, 0, 0, 0, time.UTC)))
}

func TestAgeUsesWallClock(t *testing.T) {
	t.Parallel()

	birth := time.Now().Add(-10*365*day - day)
	e, err := New("Ada", nil, "Lovelace", birth.UnixMilli(), birth.UnixMilli(), TechLead)
	require.NoError(t, err)

	assert.Equal(t, 10, e.Age())
}

func TestDatesRoundTripMillis(t *testing.T) {
	t.Parallel()

	const (
		birth   int64 = 502_243_200_123
		joining int64 = 1_700_000_000_999
	)
	e, err := New("Ada", nil, "Lovelace", birth, joining, ProductManager)
	require.NoError(t, err)

	assert.Equal(t, birth, e.BirthDate().UnixMilli())
	assert.Equal(t, joining, e.JoiningDate().UnixMilli())
	assert.Equal(t, time.Local, e.BirthDate().Location())
}

func TestRoleIsStable(t *testing.T) {
	t.Parallel()

	e, err := New("Ada", nil, "Lovelace", 0, 0, TechLead)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.Equal(t, TechLead, e.Role())
	}
	assert.Equal(t, "Ada  Lovelace [TECH_LEAD]", e.String())
}
