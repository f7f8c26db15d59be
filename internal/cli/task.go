package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/kerja/internal/model"
	"github.com/existflow/kerja/internal/workspace"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task. Every task must be linked to an existing event.

Examples:
  kerja task add "Prepare slides" --event 4f1c...
  kerja task add "Book venue" --event 4f1c... --priority high --due 2026-09-15`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks grouped by column",
	RunE:    runTaskList,
}

var taskMoveCmd = &cobra.Command{
	Use:   "move [task-id] [status]",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskMove,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Move a task to the Done column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMove(cmd, []string{args[0], model.StatusDone})
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

var (
	taskEvent    string
	taskPriority string
	taskDue      string
	taskAssignee string
	taskDesc     string
	taskStatus   string
)

func init() {
	taskAddCmd.Flags().StringVarP(&taskEvent, "event", "e", "", "Event the task belongs to (required)")
	taskAddCmd.Flags().StringVarP(&taskPriority, "priority", "p", model.PriorityMedium, "Priority (low, medium, high)")
	taskAddCmd.Flags().StringVarP(&taskDue, "due", "d", "", "Due date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringVarP(&taskAssignee, "assignee", "a", "", "Assignee user id")
	taskAddCmd.Flags().StringVar(&taskDesc, "description", "", "Task description")
	taskAddCmd.Flags().StringVarP(&taskStatus, "status", "s", model.StatusTodo, "Initial column")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
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

	task, err := ws.CreateTask(workspace.TaskInput{
		Title:       title,
		Description: taskDesc,
		Status:      taskStatus,
		AssigneeID:  taskAssignee,
		DueDate:     taskDue,
		Priority:    taskPriority,
		EventID:     taskEvent,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Added to [%s]: %q (%s)\n", task.EventName, task.Title, task.Priority)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	tasks := ws.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Add one with: kerja task add \"Your task\" --event <id>")
		return nil
	}

	columns := ws.Columns()
	for _, col := range columns {
		var inColumn []model.Task
		for _, t := range tasks {
			if t.Status == col.ID {
				inColumn = append(inColumn, t)
			}
		}
		fmt.Printf("\n%s (%d)\n", model.ColumnLabel(col.ID, columns), len(inColumn))
		for _, t := range inColumn {
			due := t.DueDate
			if due == "" {
				due = "-"
			}
			fmt.Printf("  %-8s  %-40s  %-10s  %s\n",
				t.ID[:8], truncate(t.Title, 40), due, t.Priority)
		}
	}
	fmt.Println()
	return nil
}

func runTaskMove(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireLogin(ws); err != nil {
		return err
	}

	id, status := resolveTaskID(ws, args[0]), args[1]
	if err := ws.MoveTask(id, status); err != nil {
		return err
	}
	fmt.Printf("✓ Moved to %s\n", model.ColumnLabel(status, ws.Columns()))
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	db, ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireLogin(ws); err != nil {
		return err
	}

	if err := ws.DeleteTask(resolveTaskID(ws, args[0])); err != nil {
		return err
	}
	fmt.Println("🗑  Task deleted.")
	return nil
}

// resolveTaskID accepts a unique id prefix so short ids from 'task list' work
func resolveTaskID(ws *workspace.Workspace, prefix string) string {
	match := prefix
	count := 0
	for _, t := range ws.Tasks() {
		if len(t.ID) >= len(prefix) && t.ID[:len(prefix)] == prefix {
			match = t.ID
			count++
		}
	}
	if count == 1 {
		return match
	}
	return prefix
}
