package constants

import "fmt"

// Role user di sistem
const (
	RoleUser        = "USER"
	RoleSchoolAdmin = "SCHOOL_ADMIN"
	RoleSuperadmin  = "SUPERADMIN"
)

// Template pesan error role
const (
	ErrOnlySuperadminsCanAccess = "❌ Hanya superadmin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin sekolah atau superadmin yang boleh mengakses fitur %s."
	ErrOnlyLoggedInCanAccess    = "❌ Silakan login terlebih dahulu untuk mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLoggedIn(feature string) string {
	return fmt.Sprintf(ErrOnlyLoggedInCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleSchoolAdmin,
		RoleSuperadmin,
	}

	AdminAndAbove = []string{
		RoleSchoolAdmin,
		RoleSuperadmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)
