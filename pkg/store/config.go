package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	keyEvents   = "events"
	keyWatch    = "watch"
	keyLogFile  = "log_file"
	keyLogLevel = "log_level"

	defaultEventsPath = "~/.eventcal/events.yaml"
)

// Config is the resolved eventcal configuration.
type Config interface {
	// EventsPath is the file holding the event list, with ~ expanded.
	EventsPath() string
	// Watch reports whether the UI reloads the event file when it changes.
	Watch() bool
	LogFile() string
	LogLevel() string
}

// LoadConfig reads .eventcal.yaml from $EVENTCAL_CONFIG_PATH, the working
// directory or $HOME, then applies EVENTCAL_* environment overrides. A
// missing config file is not an error.
func LoadConfig() (Config, error) {
	return loadConfig(viper.New(), "")
}

// LoadConfigFile reads the config at an explicit path.
func LoadConfigFile(path string) (Config, error) {
	return loadConfig(viper.New(), path)
}

func loadConfig(v *viper.Viper, explicit string) (Config, error) {
	v.SetDefault(keyEvents, defaultEventsPath)
	v.SetDefault(keyWatch, true)
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyLogLevel, "info")

	v.SetEnvPrefix("EVENTCAL")
	v.AutomaticEnv()

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(".eventcal") // .yaml is implicit
		if override := os.Getenv("EVENTCAL_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	events, err := ExpandPath(v.GetString(keyEvents))
	if err != nil {
		return nil, err
	}
	logFile, err := ExpandPath(v.GetString(keyLogFile))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Events:     events,
		WatchFile:  v.GetBool(keyWatch),
		LogPath:    logFile,
		LogVerbose: v.GetString(keyLogLevel),
	}, nil
}

// Override returns cfg with the non-empty flag values replacing the loaded
// events path and log file.
func Override(cfg Config, eventsPath, logFile string) (Config, error) {
	out := &fileConfig{
		Events:     cfg.EventsPath(),
		WatchFile:  cfg.Watch(),
		LogPath:    cfg.LogFile(),
		LogVerbose: cfg.LogLevel(),
	}
	var err error
	if eventsPath != "" {
		if out.Events, err = ExpandPath(eventsPath); err != nil {
			return nil, err
		}
	}
	if logFile != "" {
		if out.LogPath, err = ExpandPath(logFile); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("store: expand %q: %w", path, err)
	}
	return expanded, nil
}

type fileConfig struct {
	Events     string `json:"events"`
	WatchFile  bool   `json:"watch"`
	LogPath    string `json:"log_file"`
	LogVerbose string `json:"log_level"`
}

func (f *fileConfig) EventsPath() string { return f.Events }
func (f *fileConfig) Watch() bool        { return f.WatchFile }
func (f *fileConfig) LogFile() string    { return f.LogPath }
func (f *fileConfig) LogLevel() string   { return f.LogVerbose }
