// ABOUTME: Read side of the interaction log for export and stats commands
// ABOUTME: Tolerates partially written lines rather than failing the whole read
package auditlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// DefaultDir returns the interaction log directory used when no override
// is configured.
func DefaultDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "jarvis")
}

// PathFor returns the log file path for a given day under dir. An empty
// dir selects DefaultDir.
func PathFor(dir string, day time.Time) string {
	if dir == "" {
		dir = DefaultDir()
	}
	return filepath.Join(dir, fmt.Sprintf("interactions_%s.jsonl", day.Format("20060102")))
}

// ReadDay loads all entries logged on the given day. A missing file is an
// empty day, not an error. Malformed lines are skipped.
func ReadDay(dir string, day time.Time) ([]Entry, error) {
	f, err := os.Open(PathFor(dir, day))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log file: %w", err)
	}

	return entries, nil
}
