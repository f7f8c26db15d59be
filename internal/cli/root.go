package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/existflow/kerja/internal/config"
	"github.com/existflow/kerja/internal/logger"
	"github.com/existflow/kerja/internal/tui"
	"github.com/existflow/kerja/internal/workspace"
)

var (
	dataPath   string
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "kerja",
	Short: "Kerja - team workspace in your terminal",
	Long: `Kerja is a local-first team workspace: kanban tasks linked to calendar
events, a member directory, and an activity trail.

Run 'kerja' without arguments to launch the interactive board.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}
		if cmd.Flags().Changed("data") {
			cfg.DataPath = dataPath
		}

		logConfig := logger.DefaultConfig()
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		logConfig.FilePath = cfg.LogFile
		logConfig.Console = cfg.LogConsole

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		activeConfig = cfg
		logger.Info("kerja started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		db, ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer db.Close()

		logger.Info("launching TUI")
		p := tea.NewProgram(tui.NewModel(ws), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("kerja exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// activeConfig is resolved once in PersistentPreRunE
var activeConfig *config.Config

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// requireLogin guards mutating commands; the core would silently skip
// activity attribution otherwise
func requireLogin(ws *workspace.Workspace) error {
	if ws.CurrentUser() == nil {
		return fmt.Errorf("not logged in; run 'kerja login' first")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the workspace database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(activityCmd)
}
