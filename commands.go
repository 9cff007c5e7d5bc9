package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"notesbot/internal/config"
	"notesbot/internal/utils"
)

type rootFlags struct {
	dbPath  string
	logFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		app   *App
	)

	root := &cobra.Command{
		Use:           "notesbot",
		Short:         "Manage per-chat notes bot settings",
		Long: "Manage per-chat notes bot settings.\n\n" +
			"Group chat ids are negative; put them after -- so they are not read as flags:\n" +
			"  notesbot folder set -- -1001234567 /srv/notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if flags.dbPath != "" {
				cfg.DBPath = flags.dbPath
			}
			if flags.logFile != "" {
				cfg.LogFile = flags.logFile
			}
			if flags.verbose {
				cfg.LogStderr = true
			}

			app = NewApp(cfg)
			if err := app.startup(cmd.Context()); err != nil {
				app.shutdown()
				return err
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				app.shutdown()
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "settings database file (env NOTESBOT_DB_PATH)")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "log file (env NOTESBOT_LOG_FILE)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "mirror log lines to stderr")

	appFn := func() *App { return app }
	root.AddCommand(
		newInitCmd(appFn),
		newFolderCmd(appFn),
		newTasksCmd(appFn),
		newShowCmd(appFn),
	)
	return root
}

func newInitCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or migrate the settings database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "settings database ready: %s\n", app().cfg.DBPath)
			return nil
		},
	}
}

func newFolderCmd(app func() *App) *cobra.Command {
	folder := &cobra.Command{
		Use:   "folder",
		Short: "Read or change a chat's notes folder",
	}

	folder.AddCommand(&cobra.Command{
		Use:   "set <chat-id> <path>",
		Short: "Set the notes folder for a chat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := parseChatID(args[0])
			if err != nil {
				return err
			}
			if !utils.DirectoryExists(args[1]) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is not a directory on this host\n", args[1])
			}
			msg, err := app().ChatSettings.SetNotesFolder(cmd.Context(), chatID, args[1])
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	})

	folder.AddCommand(&cobra.Command{
		Use:   "get <chat-id>",
		Short: "Print the notes folder for a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := parseChatID(args[0])
			if err != nil {
				return err
			}
			path, err := app().ChatSettings.NotesFolder(cmd.Context(), chatID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return folder
}

func newTasksCmd(app func() *App) *cobra.Command {
	tasks := &cobra.Command{
		Use:   "tasks",
		Short: "Read or change a chat's forced task mode",
	}

	tasks.AddCommand(&cobra.Command{
		Use:   "set <chat-id> on|off",
		Short: "Turn forced task mode on or off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := parseChatID(args[0])
			if err != nil {
				return err
			}
			enabled, err := parseSwitch(args[1])
			if err != nil {
				return err
			}
			msg, err := app().ChatSettings.SetAllAsTasks(cmd.Context(), chatID, enabled)
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	})

	tasks.AddCommand(&cobra.Command{
		Use:   "get <chat-id>",
		Short: "Print whether forced task mode is on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := parseChatID(args[0])
			if err != nil {
				return err
			}
			enabled, err := app().ChatSettings.AllAsTasks(cmd.Context(), chatID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), switchName(enabled))
			return nil
		},
	})

	return tasks
}

func newShowCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <chat-id>",
		Short: "Print all settings for a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := parseChatID(args[0])
			if err != nil {
				return err
			}
			s, err := app().ChatSettings.Get(cmd.Context(), chatID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "chat_id:      %d\n", s.ChatID)
			fmt.Fprintf(out, "notes_folder: %s\n", s.NotesFolder)
			fmt.Fprintf(out, "all_as_tasks: %s\n", switchName(s.AllAsTasks))
			return nil
		},
	}
}

func parseChatID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chat id %q", s)
	}
	return id, nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
	return v, nil
}

func switchName(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
