package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session locally",
	RunE: func(cmd *cobra.Command, _ []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			email, err = promptText("Email")
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = promptPassword("Password")
			if err != nil {
				return err
			}
		}

		sess, err := state.sessions.Login(cmd.Context(), email, password)
		if err != nil {
			printError(err)
			return err
		}

		printSuccess("logged in as %s <%s>", sess.Name, sess.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and store the session locally",
	RunE: func(cmd *cobra.Command, _ []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if name == "" {
			name, err = promptText("Name")
			if err != nil {
				return err
			}
		}
		if email == "" {
			email, err = promptText("Email")
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = promptPassword("Password")
			if err != nil {
				return err
			}
		}

		sess, err := state.sessions.Register(cmd.Context(), name, email, password)
		if err != nil {
			printError(err)
			return err
		}

		printSuccess("registered and logged in as %s <%s>", sess.Name, sess.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		if assumeYes, _ := cmd.Flags().GetBool("yes"); !assumeYes {
			prompt := promptui.Select{
				Label: "Log out and forget the stored session?",
				Items: []string{"Yes", "No"},
			}
			_, answer, err := prompt.Run()
			if err != nil {
				return err
			}
			if answer != "Yes" {
				return nil
			}
		}

		state.sessions.Logout()
		printSuccess("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE: func(_ *cobra.Command, _ []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		sess := state.sessions.Current()
		if !sess.Active() {
			printMuted("not logged in")
			return nil
		}

		printTitle(fmt.Sprintf("%s <%s>", sess.Name, sess.Email))

		if exp, ok := sess.ExpiresAt(); ok {
			if time.Now().After(exp) {
				printError(errors.New("the stored token has expired, log in again"))
			} else {
				printMuted("token valid until %s", exp.Format(time.RFC1123))
			}
		}

		return nil
	},
}

func promptText(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("%s is required", strings.ToLower(label))
			}
			return nil
		},
	}

	return prompt.Run()
}

func promptPassword(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}

	return prompt.Run()
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")

	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password (prompted when omitted)")

	logoutCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
