package identity

// Demo identity catalog. One account per role, all bound to the demo tenant
// except the system-wide super-user. This is a demo scaffold, not a security
// boundary: the shared password is public on purpose.
const (
	DemoTenantID = "S1"
	DemoPassword = "cardlect-demo"
)

var seedCatalog = []Identity{
	{ID: "uid-super", Name: "Amina Okafor", Email: "admin@cardlect.io", Role: RoleSuperUser},
	{ID: "uid-admin", Name: "Daniel Ssali", Email: "school-admin@cardlect.io", Role: RoleAdmin, TenantID: DemoTenantID},
	{ID: "uid-security", Name: "Grace Nambi", Email: "security@cardlect.io", Role: RoleSecurity, TenantID: DemoTenantID},
	{ID: "uid-finance", Name: "Peter Mugisha", Email: "finance@cardlect.io", Role: RoleFinance, TenantID: DemoTenantID},
	{ID: "uid-teacher", Name: "Sarah Achieng", Email: "teacher@cardlect.io", Role: RoleTeacher, TenantID: DemoTenantID},
	{ID: "uid-parent", Name: "Joseph Kato", Email: "parent@cardlect.io", Role: RoleParent, TenantID: DemoTenantID},
	{ID: "uid-student", Name: "Brian Odong", Email: "student@cardlect.io", Role: RoleStudent, TenantID: DemoTenantID},
	{ID: "uid-clinic", Name: "Ruth Namazzi", Email: "clinic@cardlect.io", Role: RoleClinic, TenantID: DemoTenantID},
	{ID: "uid-store", Name: "Moses Wafula", Email: "store@cardlect.io", Role: RoleStore, TenantID: DemoTenantID},
	{ID: "uid-exams", Name: "Esther Atim", Email: "exams@cardlect.io", Role: RoleExamOfficer, TenantID: DemoTenantID},
	{ID: "uid-library", Name: "John Okello", Email: "library@cardlect.io", Role: RoleLibrarian, TenantID: DemoTenantID},
	{ID: "uid-stores", Name: "Mary Apio", Email: "approved-stores@cardlect.io", Role: RoleApprovedStores, TenantID: DemoTenantID},
}

// Seed returns the demo identities with their passwords hashed.
func Seed() ([]Identity, error) {
	ids := make([]Identity, len(seedCatalog))
	copy(ids, seedCatalog)
	for i := range ids {
		if err := ids[i].SetPassword(DemoPassword); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
