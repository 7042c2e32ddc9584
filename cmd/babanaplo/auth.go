package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in and persist the session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authStore.Login(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("%s", authStore.Err())
		}
		fmt.Println("Sikeres bejelentkezés.")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <email> <password> <full name>",
	Short: "Create an account; a new user is logged in immediately",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authStore.Register(cmd.Context(), args[0], args[1], args[2]); err != nil {
			return fmt.Errorf("%s", authStore.Err())
		}
		fmt.Println("Sikeres regisztráció.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		authStore.Logout()
		fmt.Println("Kijelentkezve.")
		return nil
	},
}
