package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/cardlect/cardlect/core/identity"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	provider *identity.SeedProvider
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addidentity -name NAME -email EMAIL -role ROLE [-tenant TENANT] - add or replace an identity")
	fmt.Println("  resetpassword -email EMAIL - reset an identity's password")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addIdentityCmd := flag.NewFlagSet("addidentity", flag.ExitOnError)
	addIdentityName := addIdentityCmd.String("name", "", "The identity's display name.")
	addIdentityEmail := addIdentityCmd.String("email", "", "The identity's email. The password will be prompted next.")
	addIdentityRole := addIdentityCmd.String("role", "", "The identity's role.")
	addIdentityTenant := addIdentityCmd.String("tenant", "", "The school the identity is bound to. Leave empty for system-wide roles.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The identity's email. The password will be prompted next.")

	switch args[1] {
	case "addidentity":
		if err := addIdentityCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addIdentityName == "" || *addIdentityEmail == "" || *addIdentityRole == "" {
			addIdentityCmd.Usage()
			return errHelp
		}
		pwd, err := promptPassword()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addIdentityCmd.Usage()
			return errHelp
		}
		return cli.addIdentity(*addIdentityName, *addIdentityEmail, *addIdentityRole, *addIdentityTenant, string(pwd))
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := promptPassword()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordEmail, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}

func promptPassword() ([]byte, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	return pwd, err
}
