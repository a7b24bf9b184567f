package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of platform roles.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// ParseRole accepts a role name case-insensitively and rejects unknown roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Capability is a permission granted to a role.
type Capability string

const (
	CapTakeQuiz      Capability = "quiz:take"
	CapAuthorQuiz    Capability = "quiz:author"
	CapViewAnswerKey Capability = "quiz:answer-key"
)

var roleCapabilities = map[Role][]Capability{
	RoleStudent:    {CapTakeQuiz},
	RoleInstructor: {CapTakeQuiz, CapAuthorQuiz, CapViewAnswerKey},
	RoleAdmin:      {CapTakeQuiz, CapAuthorQuiz, CapViewAnswerKey},
}

// AccessPolicy decides which roles may author quizzes and see answer keys.
type AccessPolicy interface {
	CanAuthorQuiz(role Role) bool
	CanViewAnswerKey(role Role) bool
}

// RolePolicy grants capabilities from a static role table.
type RolePolicy struct {
	grants map[Role]map[Capability]struct{}
}

func NewRolePolicy() *RolePolicy {
	p := &RolePolicy{grants: make(map[Role]map[Capability]struct{}, len(roleCapabilities))}
	for role, caps := range roleCapabilities {
		set := make(map[Capability]struct{}, len(caps))
		for _, c := range caps {
			set[c] = struct{}{}
		}
		p.grants[role] = set
	}
	return p
}

// Has reports whether role holds capability. Unknown roles hold nothing.
func (p *RolePolicy) Has(role Role, capability Capability) bool {
	_, ok := p.grants[role][capability]
	return ok
}

func (p *RolePolicy) CanAuthorQuiz(role Role) bool {
	return p.Has(role, CapAuthorQuiz)
}

func (p *RolePolicy) CanViewAnswerKey(role Role) bool {
	return p.Has(role, CapViewAnswerKey)
}

// Caller identifies the authenticated user making a request.
type Caller struct {
	UserID string
	Role   Role
}
