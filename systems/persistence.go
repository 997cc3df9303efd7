package systems

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/automoto/rollaway/logging"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedProgress represents the run history stored on disk
type SavedProgress struct {
	BestDistance float64 `json:"bestDistance"`
	Runs         int     `json:"runs"`
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen    bool `json:"fullscreen"`
	TouchMovement bool `json:"touchMovement"`
}

const (
	progressItem = "progress"
	settingsItem = "settings"
)

// itemStore is the subset of gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var (
	store   itemStore
	storeMu sync.Mutex

	// progress mirrors the last saved progress so a failed load does not
	// zero the best distance.
	progress SavedProgress
)

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "rollaway",
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	setStore(m)
	return nil
}

func setStore(s itemStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	store = s
	progress = SavedProgress{}
}

// LoadProgress loads run history from disk. A missing save is not an error.
func LoadProgress() (SavedProgress, error) {
	storeMu.Lock()
	defer storeMu.Unlock()
	if store == nil {
		return progress, nil
	}

	data, err := store.LoadItem(progressItem)
	if err != nil {
		return progress, fmt.Errorf("load progress: %w", err)
	}
	if len(data) == 0 {
		return progress, nil
	}

	var saved SavedProgress
	if err := json.Unmarshal(data, &saved); err != nil {
		return progress, fmt.Errorf("parse progress: %w", err)
	}
	progress = saved
	return progress, nil
}

// BestDistance returns the best saved distance, or 0 if none is stored.
func BestDistance() float64 {
	p, err := LoadProgress()
	if err != nil {
		logging.L().Warn("could not load progress", zap.Error(err))
	}
	return p.BestDistance
}

// RecordRun counts a finished run and keeps the best distance. Failures are
// logged; the game carries on without persistence.
func RecordRun(distance float64) {
	p, err := LoadProgress()
	if err != nil {
		logging.L().Warn("could not load progress", zap.Error(err))
	}

	p.Runs++
	newBest := distance > p.BestDistance
	if newBest {
		p.BestDistance = distance
	}

	if err := saveProgress(p); err != nil {
		logging.L().Warn("could not save progress", zap.Error(err))
		return
	}
	if newBest {
		logging.L().Info("new best distance", zap.Float64("distance", distance))
	}
}

func saveProgress(p SavedProgress) error {
	storeMu.Lock()
	defer storeMu.Unlock()
	progress = p
	if store == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := store.SaveItem(progressItem, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when none are saved.
func LoadSettings() (*SavedSettings, error) {
	storeMu.Lock()
	defer storeMu.Unlock()
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsItem)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	storeMu.Lock()
	defer storeMu.Unlock()
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
