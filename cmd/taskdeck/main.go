package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/storage"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/transfer"
	"github.com/taskdeck/taskdeck/internal/view"
)

var (
	configFlag  string
	dataDirFlag string
	yesFlag     bool
	outDirFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "taskdeck - a terminal task tracker with list and kanban views",
	RunE:  runBoard,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the full widget (same as running taskdeck with no arguments)",
	RunE:  runBoard,
}

var simpleCmd = &cobra.Command{
	Use:   "simple",
	Short: "Open the simple checklist widget",
	RunE:  runSimple,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import checklist tasks from a JSON file (replaces the current list)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the checklist as pretty-printed JSON",
	RunE:  runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory override")
	importCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation prompt")
	exportCmd.Flags().StringVarP(&outDirFlag, "out", "o", ".", "output directory")
	rootCmd.AddCommand(boardCmd, simpleCmd, importCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config and opens the logger shared by all commands.
func setup() (*config.Config, *slog.Logger, func() error, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, nil, err
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

func newTaskStore(cfg *config.Config, logger *slog.Logger) *store.TaskStore {
	defaults := func() []domain.Task { return nil }
	if cfg.SeedSamples {
		defaults = storage.SeedTasks
	}
	blob := storage.NewBlob(cfg.DataDir, storage.NamespaceTasks, defaults, logger)
	return store.New(blob, logger)
}

func newSimpleStore(cfg *config.Config, logger *slog.Logger) *store.SimpleStore {
	blob := storage.NewBlob[domain.SimpleTask](cfg.DataDir, storage.NamespaceSimple, nil, logger)
	return store.NewSimple(blob, logger)
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	mode := view.ModeList
	if cfg.DefaultView == "board" {
		mode = view.ModeBoard
	}

	model := app.New(newTaskStore(cfg, logger), mode, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func runSimple(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	model := app.NewSimple(newSimpleStore(cfg, logger), logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	tasks, dropped, err := transfer.Import(data)
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	s := newSimpleStore(cfg, logger)
	if !yesFlag {
		prompt := fmt.Sprintf("Import %d tasks?", len(tasks))
		if s.Len() > 0 {
			prompt = fmt.Sprintf("Import %d tasks? This will replace the current %d tasks.", len(tasks), s.Len())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)

		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Import canceled.")
			return nil
		}
	}

	s.Replace(tasks)
	fmt.Fprintf(cmd.OutOrStdout(), "%d tasks imported", len(tasks))
	if dropped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d invalid entries dropped)", dropped)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	s := newSimpleStore(cfg, logger)
	tasks := s.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks to export.")
		return nil
	}

	data, err := transfer.Export(tasks)
	if err != nil {
		return err
	}

	path := filepath.Join(outDirFlag, transfer.Filename(time.Now()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d tasks exported to %s\n", len(tasks), path)
	return nil
}
