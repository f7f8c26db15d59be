package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the workspace",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the workspace",
	RunE:  runLogout,
}

func runLogin(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if u := ws.CurrentUser(); u != nil {
		fmt.Printf("Already logged in as %s. Run 'kerja logout' first.\n", u.Name)
		return nil
	}

	if ws.DefaultCredentialsActive() {
		fmt.Println("Hint: the default account is admin / 123")
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	passwordBytes, _ := term.ReadPassword(int(syscall.Stdin))
	password := string(passwordBytes)
	fmt.Println()

	user, err := ws.Login(username, password)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if ws.CurrentUser() == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	ws.Logout()
	fmt.Println("✅ Logged out.")
	return nil
}
