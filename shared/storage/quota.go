package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dayKeyFormat = "2006-01-02"

// QuotaTracker keeps a persistent counter of video-API cost units spent
// against a fixed daily budget. It is advisory bookkeeping for display:
// it never blocks a call and never gates one; the remote API enforces
// the real ceiling.
type QuotaTracker struct {
	filePath    string
	dailyBudget int

	mu        sync.Mutex
	unitsUsed int
	dayKey    string

	now func() time.Time
}

type quotaState struct {
	UnitsUsed int    `json:"units_used"`
	DayKey    string `json:"day_key"`
}

// NewQuotaTracker loads (or creates) the persisted counter under dataDir.
// A stored day key from a previous day resets the counter to zero.
func NewQuotaTracker(dataDir string, dailyBudget int) (*QuotaTracker, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	qt := &QuotaTracker{
		filePath:    filepath.Join(dataDir, "quota.json"),
		dailyBudget: dailyBudget,
		now:         time.Now,
	}

	if err := qt.load(); err != nil {
		return nil, fmt.Errorf("failed to load quota state: %w", err)
	}
	qt.mu.Lock()
	qt.rollLocked()
	qt.mu.Unlock()

	return qt, nil
}

// Add charges cost units and persists immediately. A persistence failure
// is not surfaced to the caller; the in-memory counter stays correct for
// the session either way.
func (qt *QuotaTracker) Add(cost int) {
	if cost <= 0 {
		return
	}
	qt.mu.Lock()
	defer qt.mu.Unlock()

	qt.rollLocked()
	qt.unitsUsed += cost
	if err := qt.saveLocked(); err != nil {
		// Advisory state only; keep going.
		fmt.Fprintf(os.Stderr, "warning: failed to persist quota state: %v\n", err)
	}
}

// Used reports the units spent today, rolling the day over first if the
// stored key is stale.
func (qt *QuotaTracker) Used() int {
	qt.mu.Lock()
	defer qt.mu.Unlock()
	qt.rollLocked()
	return qt.unitsUsed
}

// Budget reports the configured daily budget.
func (qt *QuotaTracker) Budget() int {
	return qt.dailyBudget
}

// Roll forces a day-change check. The server's midnight cron calls this
// so the displayed counter resets even with no traffic.
func (qt *QuotaTracker) Roll() {
	qt.mu.Lock()
	defer qt.mu.Unlock()
	qt.rollLocked()
}

func (qt *QuotaTracker) rollLocked() {
	today := qt.now().Format(dayKeyFormat)
	if qt.dayKey == today {
		return
	}
	qt.dayKey = today
	qt.unitsUsed = 0
	if err := qt.saveLocked(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist quota reset: %v\n", err)
	}
}

func (qt *QuotaTracker) load() error {
	file, err := os.Open(qt.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open quota file: %w", err)
	}
	defer file.Close()

	var state quotaState
	if err := json.NewDecoder(file).Decode(&state); err != nil {
		return fmt.Errorf("failed to decode quota state: %w", err)
	}
	qt.unitsUsed = state.UnitsUsed
	qt.dayKey = state.DayKey
	return nil
}

func (qt *QuotaTracker) saveLocked() error {
	file, err := os.Create(qt.filePath)
	if err != nil {
		return fmt.Errorf("failed to create quota file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(quotaState{UnitsUsed: qt.unitsUsed, DayKey: qt.dayKey})
}
