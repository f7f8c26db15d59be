package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the activity log (most recent first)",
	RunE:  runActivity,
}

func runActivity(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	activities := ws.Activities()
	if len(activities) == 0 {
		fmt.Println("No activity yet.")
		return nil
	}

	fmt.Println()
	for _, a := range activities {
		fmt.Printf("  %s  %-18s %s %q\n", a.Timestamp, a.UserName, a.Action, a.Target)
	}
	fmt.Println()
	return nil
}
