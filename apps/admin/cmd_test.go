package main

import (
	"bytes"
	"testing"

	"github.com/cardlect/cardlect/core"
	"github.com/cardlect/cardlect/core/identity"
)

func setup(t *testing.T) *commandLine {
	t.Helper()

	ids, err := identity.Seed()
	if err != nil {
		t.Fatalf("Seed() failed, %v", err)
	}
	return &commandLine{provider: identity.NewSeedProvider(ids...)}
}

type cliTest struct {
	name              string
	args              []string // without program name
	wantErr           error
	wantValidationErr bool
	extra             interface{}
}

func Test_commandLine_addIdentity(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addidentity"}, wantErr: errHelp},
		{name: "missing role", args: []string{"addidentity", "-name", "Awe", "-email", "awe@test.cd"}, wantErr: errHelp},
		{name: "no password", args: []string{"addidentity", "-name", "Awe", "-email", "awe@test.cd", "-role", "teacher"}, wantErr: errHelp},
		{name: "bad role", args: []string{"addidentity", "-name", "Awe", "-email", "awe@test.cd", "-role", "lol"},
			extra: extra{pwd: "mdr"}, wantValidationErr: true},
		{name: "bad email", args: []string{"addidentity", "-name", "Awe", "-email", "not-an-email", "-role", "teacher"},
			extra: extra{pwd: "mdr"}, wantValidationErr: true},
		{name: "create", args: []string{"addidentity", "-name", "Awe", "-email", "awe@test.cd", "-role", "teacher", "-tenant", identity.DemoTenantID},
			extra: extra{pwd: "mdr"}},
		{name: "replace existing", args: []string{"addidentity", "-name", "Awe Two", "-email", "awe@test.cd", "-role", "finance", "-tenant", identity.DemoTenantID},
			extra: extra{pwd: "mdr2"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				ident, err := cli.provider.GetByEmail("awe@test.cd")
				if err != nil {
					t.Fatalf("GetByEmail() failed, %v", err)
				}
				if err := ident.CheckPassword(tt.extra.(extra).pwd); err != nil {
					t.Error("failed to set password")
				}
			} else if tt.wantValidationErr {
				if !core.IsValidationError(err) {
					t.Errorf("cli.run() error = %v, want a validation error", err)
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	ident, err := cli.provider.GetByEmail("admin@cardlect.io")
	if err != nil {
		t.Fatalf("GetByEmail() failed, %v", err)
	}

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "email but no password", args: []string{"resetpassword", "-email", "lol@test.cd"}, wantErr: errHelp},
		{name: "identity not found", args: []string{"resetpassword", "-email", "lol@test.cd"}, extra: extra{pwd: "lol"}, wantErr: identity.ErrNotFound},
		{name: "reset", args: []string{"resetpassword", "-email", ident.Email}, extra: extra{pwd: "lol"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				refreshed, err := cli.provider.GetByEmail(ident.Email)
				if err != nil {
					t.Fatalf("GetByEmail() failed, %v", err)
				}
				if bytes.Equal(refreshed.PasswordHash, ident.PasswordHash) {
					t.Error("failed to update new password")
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
