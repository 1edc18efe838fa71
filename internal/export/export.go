// Package export renders a user's attempt history as CSV and writes it to a
// shareable file.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tracker/internal/game"
)

// ErrNothingToExport is returned when the history holds no attempts.
var ErrNothingToExport = errors.New("export: no attempts to export")

const header = "Level,Result,Time (s)"

// Format renders the history as CSV, one row per attempt in ledger order.
// Completed attempts read "Answered", abandoned ones "Gave Up"; times carry
// two decimal places. Rows are joined with newlines; no trailing newline.
func Format(history []game.AttemptResult) (string, error) {
	if len(history) == 0 {
		return "", ErrNothingToExport
	}

	var b strings.Builder
	b.WriteString(header)
	for _, res := range history {
		result := "Gave Up"
		if res.Completed {
			result = "Answered"
		}
		fmt.Fprintf(&b, "\n%d,%s,%.2f", res.Level, result, res.Elapsed)
	}
	return b.String(), nil
}

// Write formats the history and writes it to a timestamped CSV file under
// dir, creating the directory if needed. It returns the path of the file.
func Write(dir string, userID uint32, history []game.AttemptResult) (string, error) {
	content, err := Format(history)
	if err != nil {
		return "", err
	}

	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("export: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: cannot create directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("tracker-%d-%s.csv", userID, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("export: cannot write file: %w", err)
	}
	return path, nil
}
