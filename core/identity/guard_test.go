package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardlect/cardlect/core/identity"
)

func TestCheck(t *testing.T) {
	teacherSess := &identity.Session{
		Identity: identity.Identity{ID: "uid-teacher", Role: identity.RoleTeacher, TenantID: identity.DemoTenantID},
	}

	tests := []struct {
		name     string
		sess     *identity.Session
		required []identity.Role
		want     identity.Decision
	}{
		{name: "no session", sess: nil, required: []identity.Role{identity.RoleFinance},
			want: identity.Decision{Redirect: identity.LoginPath}},
		{name: "role match", sess: teacherSess, required: []identity.Role{identity.RoleTeacher},
			want: identity.Decision{Authorized: true}},
		{name: "match among several", sess: teacherSess, required: []identity.Role{identity.RoleAdmin, identity.RoleTeacher},
			want: identity.Decision{Authorized: true}},
		{name: "mismatch redirects to own landing page", sess: teacherSess, required: []identity.Role{identity.RoleFinance},
			want: identity.Decision{Redirect: "/teacher"}},
		{name: "mismatch against several", sess: teacherSess, required: []identity.Role{identity.RoleFinance, identity.RoleSecurity},
			want: identity.Decision{Redirect: "/teacher"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.Check(tt.sess, tt.required...))
		})
	}
}

func TestGuard_tracksManager(t *testing.T) {
	mgr := setup(t)
	guard := identity.NewGuard(mgr)

	// logged out: everything redirects to login
	assert.Equal(t, identity.Decision{Redirect: identity.LoginPath}, guard.Check(identity.RoleFinance))

	_, err := mgr.Login("teacher@cardlect.io", identity.DemoPassword)
	assert.NoError(t, err)

	// decisions are re-evaluated against the live session
	assert.Equal(t, identity.Decision{Authorized: true}, guard.Check(identity.RoleTeacher))
	assert.Equal(t, identity.Decision{Redirect: "/teacher"}, guard.Check(identity.RoleFinance))

	mgr.Logout()
	assert.Equal(t, identity.Decision{Redirect: identity.LoginPath}, guard.Check(identity.RoleTeacher))
}

func TestRole_LandingPath(t *testing.T) {
	for _, role := range identity.AllRoles {
		assert.True(t, role.Valid(), role)
		assert.NotEqual(t, identity.LoginPath, role.LandingPath(), role)
	}
	assert.Equal(t, "/overview", identity.RoleSuperUser.LandingPath())
	assert.Equal(t, identity.LoginPath, identity.Role("lol").LandingPath())
	assert.False(t, identity.Role("lol").Valid())
}
