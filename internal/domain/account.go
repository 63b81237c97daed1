package domain

// Role discriminates the two account variants. It is fixed at registration
// and is the sole input to every authorization decision.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleEmployer:
		return true
	default:
		return false
	}
}

// Account is the tagged union over the two variants. The concrete type
// carries the tag; stores may still keep the variants in separate tables.
type Account interface {
	AccountID() string
	AccountRole() Role
}
