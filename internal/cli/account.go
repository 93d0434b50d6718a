// Account commands: create, login, show, update.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habitkeep/habitkeep/pkg/types"
)

func newAccountCmd() *cobra.Command {
	account := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}
	account.AddCommand(newAccountCreateCmd())
	account.AddCommand(newAccountLoginCmd())
	account.AddCommand(newAccountShowCmd())
	account.AddCommand(newAccountUpdateCmd())
	return account
}

func newAccountCreateCmd() *cobra.Command {
	var userName, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create registers a new account with a user name and password.

Example:
  habitkeep account create --username alice --password pw1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := userStore()
			if err != nil {
				return err
			}

			// Duplicate prevention is a caller-level rule; the store
			// inserts unconditionally.
			exists, err := users.Exists(userName)
			if err != nil {
				return fmt.Errorf("check account: %w", err)
			}
			if exists {
				return fmt.Errorf("account %q already exists", userName)
			}

			if err := users.Create(userName, password); err != nil {
				return fmt.Errorf("create account: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %q created\n", userName)
			return nil
		},
	}

	cmd.Flags().StringVar(&userName, "username", "", "user name (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAccountLoginCmd() *cobra.Command {
	var userName, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and print the user id",
		Long: `Login checks the user name and password and prints the user id.
Pass that id to every other command via --user.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := userStore()
			if err != nil {
				return err
			}

			id, err := users.Authenticate(userName, password)
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("invalid credentials")
			}
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if flags.jsonMode {
				fmt.Fprintf(cmd.OutOrStdout(), "{\"user_id\": %d}\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userName, "username", "", "user name (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAccountShowCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := userStore()
			if err != nil {
				return err
			}

			user, err := users.Get(userID)
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("no user with id %d", userID)
			}
			if err != nil {
				return fmt.Errorf("get user: %w", err)
			}

			if flags.jsonMode {
				out := struct {
					UserID   int64  `json:"user_id"`
					UserName string `json:"user_name"`
					Email    string `json:"email,omitempty"`
				}{user.UserID, user.UserName, user.Email}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal user: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User:  %s (id %d)\n", user.UserName, user.UserID)
			if user.Email != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Email: %s\n", user.Email)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newAccountUpdateCmd() *cobra.Command {
	var userID int64
	var userName, email, password string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update account details",
		Long: `Update changes the account's user name, email, or password.
Flags left unset keep their current value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := userStore()
			if err != nil {
				return err
			}

			current, err := users.Get(userID)
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("no user with id %d", userID)
			}
			if err != nil {
				return fmt.Errorf("get user: %w", err)
			}

			if !cmd.Flags().Changed("username") {
				userName = current.UserName
			}
			if !cmd.Flags().Changed("email") {
				email = current.Email
			}
			if !cmd.Flags().Changed("password") {
				password = current.Password
			}

			if err := users.Update(userID, userName, email, password); err != nil {
				return fmt.Errorf("update user: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Account updated")
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&userName, "username", "", "new user name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
