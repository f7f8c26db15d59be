package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/existflow/kerja/internal/workspace"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage events",
}

var eventAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Schedule a new event",
	Long: `Schedule a new event.

Examples:
  kerja event add "Q3 Planning" --type planning --date 2026-09-01
  kerja event add "Client demo" --type demo --date 2026-09-03 --start 14:00 --end 15:00`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEventAdd,
}

var eventListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List events",
	RunE:    runEventList,
}

var eventDeleteCmd = &cobra.Command{
	Use:     "rm [event-id]",
	Aliases: []string{"delete"},
	Short:   "Cancel an event",
	Args:    cobra.ExactArgs(1),
	RunE:    runEventDelete,
}

var (
	eventType     string
	eventDate     string
	eventEndDate  string
	eventStart    string
	eventEnd      string
	eventLocation string
	eventClient   string
	eventDesc     string
)

func init() {
	today := time.Now().Format("2006-01-02")
	eventAddCmd.Flags().StringVarP(&eventType, "type", "t", "meeting", "Event type id")
	eventAddCmd.Flags().StringVarP(&eventDate, "date", "d", today, "Start date (YYYY-MM-DD)")
	eventAddCmd.Flags().StringVar(&eventEndDate, "end-date", "", "End date (defaults to start date)")
	eventAddCmd.Flags().StringVar(&eventStart, "start", "09:00", "Start time (HH:MM)")
	eventAddCmd.Flags().StringVar(&eventEnd, "end", "10:00", "End time (HH:MM)")
	eventAddCmd.Flags().StringVar(&eventLocation, "location", "", "Location")
	eventAddCmd.Flags().StringVar(&eventClient, "client", "", "Client name")
	eventAddCmd.Flags().StringVar(&eventDesc, "description", "", "Event description")

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventDeleteCmd)
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireLogin(ws); err != nil {
		return err
	}

	title := args[0]
	for _, arg := range args[1:] {
		title += " " + arg
	}

	event, err := ws.CreateEvent(workspace.EventInput{
		Title:       title,
		Description: eventDesc,
		Date:        eventDate,
		EndDate:     eventEndDate,
		StartTime:   eventStart,
		EndTime:     eventEnd,
		Type:        eventType,
		Location:    eventLocation,
		ClientName:  eventClient,
	})
	if err != nil {
		return err
	}

	fmt.Printf("📅 Scheduled %q on %s %s (id %s)\n", event.Title, event.Date, event.StartTime, event.ID[:8])
	return nil
}

func runEventList(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	events := ws.Events()
	if len(events) == 0 {
		fmt.Println("No events yet. Schedule one with: kerja event add \"Your event\"")
		return nil
	}

	fmt.Println()
	for _, e := range events {
		when := e.Date
		if e.EndDate != e.Date {
			when += ".." + e.EndDate
		}
		fmt.Printf("  %-8s  %-30s  %-14s  %s-%s  %s\n",
			e.ID[:8], truncate(e.Title, 30), e.Type, e.StartTime, e.EndTime, when)
	}
	fmt.Println()
	return nil
}

func runEventDelete(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireLogin(ws); err != nil {
		return err
	}

	if err := ws.DeleteEvent(resolveEventID(ws, args[0])); err != nil {
		return err
	}
	fmt.Println("🗑  Event cancelled. Linked tasks keep their snapshot of it.")
	return nil
}

// resolveEventID accepts a unique id prefix, like resolveTaskID
func resolveEventID(ws *workspace.Workspace, prefix string) string {
	match := prefix
	count := 0
	for _, e := range ws.Events() {
		if len(e.ID) >= len(prefix) && e.ID[:len(prefix)] == prefix {
			match = e.ID
			count++
		}
	}
	if count == 1 {
		return match
	}
	return prefix
}
