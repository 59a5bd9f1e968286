package identity

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/cardlect/cardlect/core"
)

// Role is the closed set of portal roles. Unlike Staff.JobTitle (free-form),
// a Role decides which routes an authenticated identity may view.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleSecurity       Role = "security"
	RoleFinance        Role = "finance"
	RoleTeacher        Role = "teacher"
	RoleParent         Role = "parent"
	RoleStudent        Role = "student"
	RoleClinic         Role = "clinic"
	RoleStore          Role = "store"
	RoleExamOfficer    Role = "exam-officer"
	RoleLibrarian      Role = "librarian"
	RoleSuperUser      Role = "super-user"
	RoleApprovedStores Role = "approved-stores"
)

var (
	AllRoles = []Role{
		RoleAdmin,
		RoleSecurity,
		RoleFinance,
		RoleTeacher,
		RoleParent,
		RoleStudent,
		RoleClinic,
		RoleStore,
		RoleExamOfficer,
		RoleLibrarian,
		RoleSuperUser,
		RoleApprovedStores,
	}

	// landingPaths maps each role to its own default landing page; the route
	// guard redirects there instead of ever rendering foreign content.
	landingPaths = map[Role]string{
		RoleAdmin:          "/admin",
		RoleSecurity:       "/security",
		RoleFinance:        "/finance",
		RoleTeacher:        "/teacher",
		RoleParent:         "/parent",
		RoleStudent:        "/student",
		RoleClinic:         "/clinic",
		RoleStore:          "/store",
		RoleExamOfficer:    "/exams",
		RoleLibrarian:      "/library",
		RoleSuperUser:      "/overview",
		RoleApprovedStores: "/approved-stores",
	}
)

func (r Role) Valid() bool {
	_, ok := landingPaths[r]
	return ok
}

// LandingPath returns the role's own default landing page.
func (r Role) LandingPath() string {
	if path, ok := landingPaths[r]; ok {
		return path
	}
	return LoginPath
}

// Identity is a demo account used for simulated login. Immutable after
// seeding.
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	TenantID     string `json:"tenant_id,omitempty"` // empty for system-wide roles
	PasswordHash []byte `json:"-"`
}

func (i *Identity) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	i.PasswordHash = hash
	return nil
}

func (i *Identity) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(i.PasswordHash, []byte(pwd))
}

// SystemWide reports whether the identity is bound to no particular tenant.
func (i *Identity) SystemWide() bool { return i.TenantID == "" }

// NewIdentity is the input for registering an identity outside the seed
// catalog (admin CLI).
type NewIdentity struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"required,role"`
	TenantID string `json:"tenant_id"`
	Password string `json:"password" validate:"required"`
}

func (ni *NewIdentity) Validate() error {
	ni.Name = core.CleanString(ni.Name)
	ni.Email = core.CleanString(ni.Email, true /* lower */)
	ni.TenantID = core.CleanString(ni.TenantID)
	return translate(core.Validate.Struct(ni))
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return core.NewValidationError(err, core.TranslateValidationErrors(vErrs)...)
	}
	return err
}
