package auth

import "fiscalis/internal/shared/constants"

// IsAdmin checks if the actor has the admin role
func IsAdmin(roles []string) bool {
	for _, role := range roles {
		if role == constants.RoleAdmin {
			return true
		}
	}
	return false
}

// IsScheduler checks if the actor has the scheduler role
func IsScheduler(roles []string) bool {
	for _, role := range roles {
		if role == constants.RoleScheduler {
			return true
		}
	}
	return false
}

// CanTriggerGeneration checks if the actor may start a generation run
func CanTriggerGeneration(roles []string) bool {
	return IsAdmin(roles) || IsScheduler(roles)
}

// HasRole checks if the actor has a specific role
func HasRole(roles []string, targetRole string) bool {
	for _, role := range roles {
		if role == targetRole {
			return true
		}
	}
	return false
}
