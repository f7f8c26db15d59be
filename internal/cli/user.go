package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/kerja/internal/workspace"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage workspace members",
}

var userAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a member",
	Long: `Add a member. Username, password and avatar fall back to defaults
derived from the name when not provided.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUserAdd,
}

var userListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List members",
	RunE:    runUserList,
}

var userDeleteCmd = &cobra.Command{
	Use:     "rm [user-id]",
	Aliases: []string{"delete"},
	Short:   "Remove a member",
	Args:    cobra.ExactArgs(1),
	RunE:    runUserDelete,
}

var (
	userUsername string
	userPassword string
	userEmail    string
	userRole     string
)

func init() {
	userAddCmd.Flags().StringVarP(&userUsername, "username", "u", "", "Username (defaults from name)")
	userAddCmd.Flags().StringVarP(&userPassword, "password", "p", "", "Password (defaults to the fallback)")
	userAddCmd.Flags().StringVarP(&userEmail, "email", "e", "", "Email address")
	userAddCmd.Flags().StringVarP(&userRole, "role", "r", "", "Role (Owner, Member, Guest)")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userDeleteCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireLogin(ws); err != nil {
		return err
	}

	name := args[0]
	for _, arg := range args[1:] {
		name += " " + arg
	}

	user, err := ws.CreateUser(workspace.UserInput{
		Name:     name,
		Username: userUsername,
		Password: userPassword,
		Email:    userEmail,
		Role:     userRole,
	})
	if err != nil {
		return err
	}

	fmt.Printf("👤 Added %s (username %s, role %s)\n", user.Name, user.Username, user.Role)
	return nil
}

func runUserList(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	current := ws.CurrentUser()
	fmt.Println()
	for _, u := range ws.Users() {
		marker := "  "
		if current != nil && current.ID == u.ID {
			marker = "❯ "
		}
		fmt.Printf("%s%-10s  %-20s  %-15s  %-8s  %s\n", marker, u.ID[:min(10, len(u.ID))], u.Name, u.Username, u.Role, u.Email)
	}
	fmt.Println()
	return nil
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireLogin(ws); err != nil {
		return err
	}

	if err := ws.DeleteUser(args[0]); err != nil {
		return err
	}
	fmt.Println("👤 Member removed.")
	return nil
}
