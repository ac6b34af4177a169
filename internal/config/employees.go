package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prittspadelord/erm/internal/employee"
)

const dateLayout = "2006-01-02"

// EmployeeConfig declares one employee to construct at startup.
// Dates accept YYYY-MM-DD (UTC midnight), RFC 3339, or epoch milliseconds.
type EmployeeConfig struct {
	FirstName     string  `yaml:"first_name"`
	MiddleName    *string `yaml:"middle_name"`
	LastName      string  `yaml:"last_name"`
	DateOfBirth   string  `yaml:"date_of_birth"`
	DateOfJoining string  `yaml:"date_of_joining"`
	Role          string  `yaml:"role"`
}

// Build constructs the employee described by c.
func (c EmployeeConfig) Build() (*employee.Employee, error) {
	role, err := employee.ParseRole(c.Role)
	if err != nil {
		return nil, err
	}

	birth, err := parseInstant(c.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("date_of_birth: %w", err)
	}

	joining, err := parseInstant(c.DateOfJoining)
	if err != nil {
		return nil, fmt.Errorf("date_of_joining: %w", err)
	}

	return employee.New(c.FirstName, c.MiddleName, c.LastName, birth, joining, role)
}

func (c EmployeeConfig) validate() error {
	_, err := c.Build()
	return err
}

// parseInstant converts a configured date to epoch milliseconds.
func parseInstant(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("value is required")
	}

	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return millis, nil
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t.UnixMilli(), nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD, RFC 3339 or epoch milliseconds", raw)
	}
	return t.UnixMilli(), nil
}
