package main

func (cli *commandLine) resetPassword(email, pwd string) error {
	ident, err := cli.provider.GetByEmail(email)
	if err != nil {
		return err
	}
	if err := ident.SetPassword(pwd); err != nil {
		return err
	}
	cli.provider.Register(ident)
	return nil
}
