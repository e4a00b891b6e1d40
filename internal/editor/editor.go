// Package editor implements the human-editing step: a JSON value is written
// to a temporary file, the user's text editor is launched as a blocking
// subprocess, and the edited file is parsed back.
package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/MGalimov/flagport/internal/logger"
	"github.com/MGalimov/flagport/models"
)

const defaultEditor = "vi"

// JSONEditor launches the configured text editor over a temporary JSON file.
type JSONEditor struct {
	logger *logger.Logger
}

func New(log *logger.Logger) *JSONEditor {
	return &JSONEditor{logger: log}
}

// EditVariations serialises variations to an indented temporary .json file,
// opens it in the user's editor, and decodes the result after the editor
// exits. Returns an error when the editor fails or the edited content is not
// valid JSON. The temporary file is removed regardless of outcome.
func (e *JSONEditor) EditVariations(ctx context.Context, variations []models.Variation) ([]models.Variation, error) {
	data, err := e.Edit(ctx, variations)
	if err != nil {
		return nil, err
	}

	edited, err := models.DecodeVariations(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	return edited, nil
}

// Edit round-trips an arbitrary JSON-serialisable value through the editor
// and returns the raw edited bytes.
func (e *JSONEditor) Edit(ctx context.Context, v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal value for editing: %w", err)
	}

	tmp, err := os.CreateTemp("", "flagport-*.json")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if removeErr := os.Remove(tmpPath); removeErr != nil {
			e.logger.Warn().Err(removeErr).Str("path", tmpPath).Msg("remove temp file")
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	name, args := resolveEditor()
	e.logger.Debug().Str("editor", name).Str("path", tmpPath).Msg("launching editor")

	cmd := exec.CommandContext(ctx, name, append(args, tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("editor %q failed: %w", name, err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	if !json.Valid(bytes.TrimSpace(edited)) {
		return nil, fmt.Errorf("invalid JSON format after editing")
	}

	return edited, nil
}

// resolveEditor picks the editor command: VISUAL, then EDITOR, then vi.
// Values may carry arguments ("code --wait").
func resolveEditor() (string, []string) {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			fields := strings.Fields(value)
			return fields[0], fields[1:]
		}
	}
	return defaultEditor, nil
}
