package session

import (
	"time"

	"github.com/glowline/salon-scheduler/internal/models"
)

// Requirement is what a route demands of the caller.
type Requirement int

const (
	Public Requirement = iota
	AuthenticatedOnly
	AdminOnly
)

// CanAccess is a pure predicate over session state. It never redirects
// or writes a response; the caller decides what a denial means.
func CanAccess(sess *Session, req Requirement, now time.Time) bool {
	switch req {
	case Public:
		return true
	case AuthenticatedOnly:
		return sess != nil && !sess.Expired(now)
	case AdminOnly:
		return sess != nil && !sess.Expired(now) && sess.User.Role == models.RoleAdmin
	default:
		return false
	}
}
