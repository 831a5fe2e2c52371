package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/joinrss-backend/internal/app"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/internal/service/user"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage sign-in accounts",
		Long: `Manage accounts that can sign in to the registry.

A user without a bhag code is an administrator and sees every member.
A user with a bhag code sees only members of that bhag.`,
		RunE: requireSubcommand,
	}
	cmd.AddCommand(newUserCreateCmd(), newUserSetBhagCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var (
		username string
		password string
		bhag     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Example: `  joinctl user create --username admin --password 'change me please'
  joinctl user create --username karyakarta --password 'secret123' --bhag PUNE-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), cmd.ErrOrStderr(), func(c *app.Container) error {
				u, err := c.Users.CreateUser(cmd.Context(), user.CreateUserInput{
					Username: username,
					Password: password,
					BhagCode: optional(cmd.Flags().Changed("bhag"), bhag),
				})
				if errors.Is(err, domain.ErrAlreadyExists) {
					return fmt.Errorf("user %q already exists", username)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created user %q (%s).\n", u.Username, describeRole(u.Role()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&password, "password", "", "initial password, at least 8 characters (required)")
	cmd.Flags().StringVar(&bhag, "bhag", "", "bhag code; omit for an administrator")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUserSetBhagCmd() *cobra.Command {
	var (
		username string
		bhag     string
		admin    bool
	)

	cmd := &cobra.Command{
		Use:   "set-bhag",
		Short: "Change a user's bhag code, or make them an administrator",
		Long: `Change a user's bhag code. Use --admin to clear it.

Sessions opened before the change keep their old scope until they
expire or the user signs in again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if admin == cmd.Flags().Changed("bhag") {
				return errors.New("exactly one of --bhag or --admin is required")
			}
			return withContainer(cmd.Context(), cmd.ErrOrStderr(), func(c *app.Container) error {
				u, err := c.Users.SetBhag(cmd.Context(), username, optional(!admin, bhag))
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("no user named %q", username)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %q is now %s.\n", u.Username, describeRole(u.Role()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&bhag, "bhag", "", "new bhag code")
	cmd.Flags().BoolVar(&admin, "admin", false, "clear the bhag code")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func optional(set bool, v string) *string {
	if !set {
		return nil
	}
	return &v
}

func describeRole(r domain.Role) string {
	if r.IsAdmin() {
		return "administrator"
	}
	return "member of bhag " + r.OrgCode
}
