package main

import (
	"github.com/spf13/cobra"
)

var (
	serverAddr string
	authToken  string
	jsonOutput bool

	manufacturer string
	model        string
	process      string
	payloadRef   string
	pid          int32
	streamID     int64

	journalLimit   int
	journalProcess string

	rootCmd = &cobra.Command{
		Use:   "inspectctl",
		Short: "A cli for the InspectOS backend",
		Long: `inspectctl talks to a running InspectOS backend: list device
streams and inspectable processes, manage launch registrations, drive
agent attach sessions, and follow lifecycle events.`,
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show backend component health",
		Run:   runStatus, // Defined in cmd_discovery.go
	}

	streamsCmd = &cobra.Command{
		Use:   "streams",
		Short: "List connected device streams",
		Run:   runStreams, // Defined in cmd_discovery.go
	}

	processesCmd = &cobra.Command{
		Use:   "processes",
		Short: "List inspectable processes",
		Run:   runProcesses, // Defined in cmd_discovery.go
	}

	// --- Launch Registrations ---
	launchesCmd = &cobra.Command{
		Use:   "launches",
		Short: "Manage launch registrations",
	}
	launchesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered launches",
		Run:   runLaunchesList, // Defined in cmd_launches.go
	}
	launchesAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Register a launch so the next matching process is inspectable",
		Run:   runLaunchesAdd, // Defined in cmd_launches.go
	}
	launchesRemoveCmd = &cobra.Command{
		Use:   "remove",
		Short: "Withdraw a launch registration",
		Run:   runLaunchesRemove, // Defined in cmd_launches.go
	}

	// --- Attach Sessions ---
	targetsCmd = &cobra.Command{
		Use:   "targets",
		Short: "Manage attach sessions",
	}
	targetsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List attach session handles",
		Run:   runTargetsList, // Defined in cmd_targets.go
	}
	targetsAttachCmd = &cobra.Command{
		Use:   "attach",
		Short: "Attach to an inspectable process",
		Run:   runTargetsAttach, // Defined in cmd_targets.go
	}
	targetsDisposeCmd = &cobra.Command{
		Use:   "dispose [target-id]",
		Short: "Tear down an attach session",
		Args:  cobra.ExactArgs(1),
		Run:   runTargetsDispose, // Defined in cmd_targets.go
	}

	journalCmd = &cobra.Command{
		Use:   "journal",
		Short: "Show recent lifecycle transitions",
		Run:   runJournal, // Defined in cmd_journal.go
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Stream lifecycle events as they happen",
		Run:   runWatch, // Defined in cmd_watch.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:8000", "Backend base URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "Bearer token for write endpoints")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(streamsCmd)

	rootCmd.AddCommand(processesCmd)
	processesCmd.Flags().Bool("all", false, "Include live processes without a launch registration")

	rootCmd.AddCommand(launchesCmd)
	launchesCmd.AddCommand(launchesListCmd)
	launchesCmd.AddCommand(launchesAddCmd)
	launchesAddCmd.Flags().StringVar(&manufacturer, "manufacturer", "", "Device manufacturer")
	launchesAddCmd.Flags().StringVar(&model, "model", "", "Device model")
	launchesAddCmd.Flags().StringVar(&process, "process", "", "Process identifier")
	launchesAddCmd.Flags().StringVar(&payloadRef, "payload", "", "Payload reference (name@version), empty for none")
	launchesAddCmd.MarkFlagRequired("manufacturer")
	launchesAddCmd.MarkFlagRequired("model")
	launchesAddCmd.MarkFlagRequired("process")
	launchesCmd.AddCommand(launchesRemoveCmd)
	launchesRemoveCmd.Flags().StringVar(&manufacturer, "manufacturer", "", "Device manufacturer")
	launchesRemoveCmd.Flags().StringVar(&model, "model", "", "Device model")
	launchesRemoveCmd.Flags().StringVar(&process, "process", "", "Process identifier")
	launchesRemoveCmd.MarkFlagRequired("manufacturer")
	launchesRemoveCmd.MarkFlagRequired("model")
	launchesRemoveCmd.MarkFlagRequired("process")

	rootCmd.AddCommand(targetsCmd)
	targetsCmd.AddCommand(targetsListCmd)
	targetsCmd.AddCommand(targetsAttachCmd)
	targetsAttachCmd.Flags().StringVar(&manufacturer, "manufacturer", "", "Device manufacturer")
	targetsAttachCmd.Flags().StringVar(&model, "model", "", "Device model")
	targetsAttachCmd.Flags().StringVar(&process, "process", "", "Process identifier")
	targetsAttachCmd.Flags().Int32Var(&pid, "pid", 0, "Process id (required when the triple is ambiguous)")
	targetsAttachCmd.Flags().Int64Var(&streamID, "stream", 0, "Stream id (required when the triple is ambiguous)")
	targetsAttachCmd.MarkFlagRequired("manufacturer")
	targetsAttachCmd.MarkFlagRequired("model")
	targetsAttachCmd.MarkFlagRequired("process")
	targetsCmd.AddCommand(targetsDisposeCmd)

	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().IntVar(&journalLimit, "limit", 50, "Maximum entries to fetch")
	journalCmd.Flags().StringVar(&journalProcess, "process", "", "Only entries for this process identifier")

	rootCmd.AddCommand(watchCmd)
}
