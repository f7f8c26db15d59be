package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Manage event types",
}

var typesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List event types",
	RunE:    runTypesList,
}

var typesAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Add an event type",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTypesAdd,
}

var typesDeleteCmd = &cobra.Command{
	Use:     "rm [type-id]",
	Aliases: []string{"delete"},
	Short:   "Delete an event type (refused while events use it)",
	Args:    cobra.ExactArgs(1),
	RunE:    runTypesDelete,
}

var typeTheme string

func init() {
	typesAddCmd.Flags().StringVarP(&typeTheme, "theme", "t", "slate", "Color theme tag")

	typesCmd.AddCommand(typesListCmd)
	typesCmd.AddCommand(typesAddCmd)
	typesCmd.AddCommand(typesDeleteCmd)
}

func runTypesList(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println()
	for _, t := range ws.EventTypes() {
		fmt.Printf("  %-16s  %-16s  %s\n", t.ID, t.Label, t.Theme)
	}
	fmt.Println()
	return nil
}

func runTypesAdd(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireLogin(ws); err != nil {
		return err
	}

	label := args[0]
	for _, arg := range args[1:] {
		label += " " + arg
	}

	cfg, err := ws.CreateEventType(label, typeTheme)
	if err != nil {
		return err
	}
	fmt.Printf("🏷  Added event type %s (%s)\n", cfg.ID, cfg.Theme)
	return nil
}

func runTypesDelete(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireLogin(ws); err != nil {
		return err
	}

	if err := ws.DeleteEventType(args[0]); err != nil {
		return err
	}
	fmt.Println("🏷  Event type deleted.")
	return nil
}
