package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/stepmention"
	"github.com/aretw0/stepmention/internal/logging"
	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/aretw0/stepmention/pkg/mention"
	"github.com/aretw0/stepmention/pkg/steps"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var errInteractiveStdin = errors.New("no input: pass the text as an argument or pipe it through stdin")

func createLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

func createEngine(cmd *cobra.Command) (*stepmention.Engine, error) {
	logger, err := createLogger(cmd)
	if err != nil {
		return nil, err
	}
	repoPath, _ := cmd.Flags().GetString("dir")
	entry, _ := cmd.Flags().GetString("entry")

	eng, err := stepmention.New(repoPath,
		stepmention.WithLogger(logger),
		stepmention.WithEntryStep(entry),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init engine: %w", err)
	}
	return eng, nil
}

// readInput returns the joined arguments, or stdin when no argument is given.
// An interactive terminal is refused instead of blocking on it.
func readInput(args []string, stdin *os.File) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if term.IsTerminal(int(stdin.Fd())) {
		return "", errInteractiveStdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// loadStepTable reads a YAML list of step metadata, the offline alternative
// to walking a flow directory.
func loadStepTable(path string) (mention.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var metas []domain.StepMeta
	if err := yaml.Unmarshal(data, &metas); err != nil {
		return nil, fmt.Errorf("invalid steps file %s: %w", path, err)
	}
	return steps.NewCatalog(metas...), nil
}

// resolveCatalog prefers an explicit --steps file and falls back to the flow
// found in --dir.
func resolveCatalog(cmd *cobra.Command) (mention.Catalog, *slog.Logger, error) {
	logger, err := createLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	if stepsFile, _ := cmd.Flags().GetString("steps"); stepsFile != "" {
		catalog, err := loadStepTable(stepsFile)
		return catalog, logger, err
	}
	eng, err := createEngine(cmd)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := eng.Catalog()
	return catalog, logger, err
}
