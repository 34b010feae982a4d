package models

// Security levels shared by prisons and cell blocks.
var SecurityLevels = []string{"Low", "Medium", "High", "Maximum"}

// Crime severities.
var CrimeSeverities = []string{"Low", "Medium", "High", "Severe"}

// User roles.
var UserRoles = []string{"Admin", "Wardon"}

// ValidSecurityLevel reports whether s is a recognized security level.
func ValidSecurityLevel(s string) bool {
	return contains(SecurityLevels, s)
}

// ValidCrimeSeverity reports whether s is a recognized crime severity.
func ValidCrimeSeverity(s string) bool {
	return contains(CrimeSeverities, s)
}

// ValidUserRole reports whether s is a recognized user role.
func ValidUserRole(s string) bool {
	return contains(UserRoles, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
