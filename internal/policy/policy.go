// Package policy is the pure authorization core: given an authenticated
// principal and a target action it answers ALLOW or DENY with a stable
// reason code, and for list actions it returns a visibility filter the
// storage layer compiles into a query predicate. It has no side effects
// and no dependency on transport or persistence.
package policy

import (
	"github.com/skillmatch/backend/internal/models"
)

// Principal is the authenticated identity and role attached to a request,
// derived from a verified token. Passed explicitly through every call
// boundary, never via ambient request state.
type Principal struct {
	ID   uint
	Role models.Role
}

// Reason is a stable machine-readable code attached to every DENY so the
// transport layer can translate refusals uniformly.
type Reason string

const (
	ReasonAdminOnly    Reason = "admin_only"
	ReasonClientOnly   Reason = "client_only"
	ReasonNotOwner     Reason = "not_owner"
	ReasonNotApplicant Reason = "not_applicant"
	ReasonRoleUnknown  Reason = "role_unknown"
)

// Decision is the outcome of a policy check. Reason is set only on DENY.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision         { return Decision{Allowed: true} }
func deny(r Reason) Decision  { return Decision{Allowed: false, Reason: r} }
func (p Principal) admin() bool { return p.Role == models.RoleAdmin }

// --- Users ---

// CanListUsers: ADMIN only.
func CanListUsers(p Principal) Decision {
	if p.admin() {
		return allow()
	}
	return deny(ReasonAdminOnly)
}

// CanCreateUser: ADMIN only. (Self-registration goes through the public
// register endpoint, which is not policy-gated.)
func CanCreateUser(p Principal) Decision {
	if p.admin() {
		return allow()
	}
	return deny(ReasonAdminOnly)
}

// CanModifyUser: the account owner or an ADMIN may update or delete a user.
func CanModifyUser(p Principal, targetID uint) Decision {
	if p.admin() || p.ID == targetID {
		return allow()
	}
	return deny(ReasonNotOwner)
}

// CanChangeRole: only an ADMIN may change the role field. Non-admin updates
// silently retain the stored role rather than failing the whole request.
func CanChangeRole(p Principal) bool {
	return p.admin()
}

// --- Projects ---

// CanListProjects: any authenticated principal, no row-level restriction.
func CanListProjects(p Principal) Decision {
	if !p.Role.Valid() {
		return deny(ReasonRoleUnknown)
	}
	return allow()
}

// CanCreateProject: CLIENT role only. ADMIN is deliberately not exempted.
func CanCreateProject(p Principal) Decision {
	switch p.Role {
	case models.RoleClient:
		return allow()
	case models.RoleAdmin, models.RoleFreelancer:
		return deny(ReasonClientOnly)
	default:
		return deny(ReasonRoleUnknown)
	}
}

// CanModifyProject: only the project's creator may update or delete it.
// Unlike every other resource, ADMIN gets no override here; the asymmetry
// is carried over intentionally.
func CanModifyProject(p Principal, creatorID uint) Decision {
	if p.ID == creatorID {
		return allow()
	}
	return deny(ReasonNotOwner)
}

// --- Applications ---

// CanCreateApplication: freelancers apply for themselves; ADMIN may apply
// on a freelancer's behalf.
func CanCreateApplication(p Principal, freelancerID uint) Decision {
	if p.admin() || p.ID == freelancerID {
		return allow()
	}
	return deny(ReasonNotApplicant)
}

// CanSetApplicationStatus: the creator of the application's project, or ADMIN.
func CanSetApplicationStatus(p Principal, projectCreatorID uint) Decision {
	if p.admin() || p.ID == projectCreatorID {
		return allow()
	}
	return deny(ReasonNotOwner)
}

// CanDeleteApplication: the applying freelancer, or ADMIN.
func CanDeleteApplication(p Principal, freelancerID uint) Decision {
	if p.admin() || p.ID == freelancerID {
		return allow()
	}
	return deny(ReasonNotApplicant)
}

// ApplicationFilter is the visibility predicate for application list
// queries. Exactly one of All, FreelancerID or CreatorID is set; the
// storage layer turns it into a WHERE clause instead of fetching and
// filtering rows in memory.
type ApplicationFilter struct {
	All bool
	// FreelancerID restricts rows to applications made by this user.
	FreelancerID *uint
	// CreatorID restricts rows to applications on projects created by this user.
	CreatorID *uint
}

// ApplicationsVisibility returns the row-level filter a principal may list
// applications under. ADMIN sees everything, a FREELANCER only their own
// applications, a CLIENT only applications on their own projects.
func ApplicationsVisibility(p Principal) (ApplicationFilter, Decision) {
	switch p.Role {
	case models.RoleAdmin:
		return ApplicationFilter{All: true}, allow()
	case models.RoleFreelancer:
		id := p.ID
		return ApplicationFilter{FreelancerID: &id}, allow()
	case models.RoleClient:
		id := p.ID
		return ApplicationFilter{CreatorID: &id}, allow()
	default:
		return ApplicationFilter{}, deny(ReasonRoleUnknown)
	}
}
