package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the player's preferences, kept between runs.
type Settings struct {
	Scale      int    `yaml:"scale"`
	Fullscreen bool   `yaml:"fullscreen"`
	ShowFPS    bool   `yaml:"show_fps"`
	LastLevel  string `yaml:"last_level"`
	PlayerName string `yaml:"player_name"`
}

func DefaultSettings() *Settings {
	return &Settings{Scale: 3, PlayerName: "MARIO"}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager loads and saves Settings through gdata. With a nil gdata
// manager it keeps settings in memory only.
type SettingsManager struct {
	store    *gdata.Manager
	settings *Settings
}

// OpenSettings opens the platform data directory for appName and loads the
// saved settings. Failing to open storage is not fatal.
func OpenSettings(appName string) *SettingsManager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn("settings storage unavailable", "err", err)
		store = nil
	}
	sm, err := NewSettingsManager(store)
	if err != nil {
		log.Warn("using default settings", "err", err)
	}
	return sm
}

// NewSettingsManager wraps store and loads settings from it. The manager is
// usable even when the returned error is non-nil.
func NewSettingsManager(store *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	return sm, sm.Load()
}

func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("config: load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("config: unmarshal settings: %w", err)
	}
	sm.settings = loaded
	log.Debug("settings loaded", "last_level", loaded.LastLevel)
	return nil
}

func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("config: marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("config: save settings: %w", err)
	}
	return nil
}

func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

// SetScale clamps the window scale to 1..6.
func (sm *SettingsManager) SetScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	if scale > 6 {
		scale = 6
	}
	sm.settings.Scale = scale
}

func (sm *SettingsManager) SetLastLevel(name string) {
	sm.settings.LastLevel = name
}
