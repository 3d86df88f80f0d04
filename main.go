// TaskMaster is a single-user task list. It runs either as an interactive
// terminal UI or as an MCP server on stdio that exposes the same intents as
// tools. Tasks live in memory for the lifetime of the process.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	mode := flag.String("mode", "", "tui or mcp (overrides config)")
	flag.Parse()

	if err := run(*configPath, *mode); err != nil {
		fmt.Fprintf(os.Stderr, "taskmaster: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, mode string) error {
	cfg := Default()
	if configPath != "" {
		loaded, err := Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = *loaded
	}
	cfg.ApplyEnv()
	if mode != "" {
		cfg.Mode = mode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store := NewTaskStore(cfg.TitleRequiredOnSave())

	switch cfg.Mode {
	case ModeMCP:
		// stdout carries the protocol; logs go to stderr.
		logger := log.New(os.Stderr, "taskmaster: ", log.LstdFlags)
		store.OnListChange(func(n int) {
			logger.Printf("list changed: %s", WindowTitle(cfg.AppName, n))
		})
		server := newServer(cfg, store, logger)
		logger.Printf("serving %s %s on stdio", cfg.Server.Name, cfg.Server.Version)
		return server.Run(context.Background(), &mcp.StdioTransport{})

	default:
		// The terminal belongs to the UI, so logs go to a file or nowhere.
		logger := log.New(io.Discard, "", 0)
		if cfg.LogFile != "" {
			f, err := tea.LogToFile(cfg.LogFile, "taskmaster")
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			logger = log.Default()
		}
		store.OnListChange(func(n int) {
			logger.Printf("list changed: %d tasks", n)
		})
		if err := runTUI(cfg, store, logger); err != nil {
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	}
}
