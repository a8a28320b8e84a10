package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/avast/retry-go"
)

// PersistInteractionLog overwrites the flat-file interaction log at path.
// The log is an offline-analysis artifact: callers treat a failed write as a
// warning, not a pipeline failure.
func PersistInteractionLog(path string, events []InteractionEvent) error {
	err := retry.Do(
		func() error {
			return writeInteractionLog(path, events)
		},
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
	)
	if err != nil {
		return fmt.Errorf("persisting interaction log %q: %w", path, err)
	}
	return nil
}

func writeInteractionLog(path string, events []InteractionEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"user_id", "track_id", "action", "timestamp"}); err != nil {
		f.Close()
		return err
	}
	for _, ev := range events {
		row := []string{
			strconv.FormatInt(ev.UserID, 10),
			strconv.FormatInt(ev.TrackID, 10),
			string(ev.Action),
			ev.Timestamp.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
