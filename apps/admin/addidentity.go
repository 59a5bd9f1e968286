package main

import (
	"github.com/google/uuid"

	"github.com/cardlect/cardlect/core"
	"github.com/cardlect/cardlect/core/identity"
)

// addIdentity updates or creates an identity.Identity
func (cli *commandLine) addIdentity(name, email, role, tenant, pwd string) error {
	ni := identity.NewIdentity{
		Name:     name,
		Email:    email,
		Role:     identity.Role(core.CleanString(role, true /* lower */)),
		TenantID: tenant,
		Password: pwd,
	}
	if err := ni.Validate(); err != nil {
		return err
	}

	ident, err := cli.provider.GetByEmail(ni.Email)
	if err != nil {
		if err != identity.ErrNotFound {
			return err
		}
		ident = identity.Identity{ID: uuid.New().String(), Email: ni.Email}
	}
	ident.Name = ni.Name
	ident.Role = ni.Role
	ident.TenantID = ni.TenantID
	if err := ident.SetPassword(ni.Password); err != nil {
		return err
	}
	cli.provider.Register(ident)
	return nil
}
