package employee

import (
	"fmt"
	"strings"
)

// Role classifies an employee's job function. The zero value is not a valid role.
type Role int

const (
	FrontendDeveloper Role = iota + 1
	BackendDeveloper
	FullstackDeveloper
	TechLead
	Agilist
	ProductManager
)

var roleNames = map[Role]string{
	FrontendDeveloper:  "FRONTEND_DEVELOPER",
	BackendDeveloper:   "BACKEND_DEVELOPER",
	FullstackDeveloper: "FULLSTACK_DEVELOPER",
	TechLead:           "TECH_LEAD",
	Agilist:            "AGILIST",
	ProductManager:     "PRODUCT_MANAGER",
}

// Roles returns every defined role in declaration order.
func Roles() []Role {
	return []Role{
		FrontendDeveloper,
		BackendDeveloper,
		FullstackDeveloper,
		TechLead,
		Agilist,
		ProductManager,
	}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole resolves a role name. Matching ignores case and accepts '-' or
// ' ' in place of '_', so "tech-lead" and "Tech Lead" both yield TechLead.
func ParseRole(raw string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	for role, name := range roleNames {
		if name == normalized {
			return role, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, raw)
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role name accepted by ParseRole.
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}
