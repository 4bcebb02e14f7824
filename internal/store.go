package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	// ErrMissing indicates no config file exists yet; callers should run
	// the first-run prompt rather than treat this as fatal.
	ErrMissing = errors.New("config file not found")
	// ErrMalformed indicates the config file exists but could not be parsed.
	ErrMalformed = errors.New("config file is malformed")
	// ErrInvalidKey indicates a candidate API key failed validation.
	ErrInvalidKey = errors.New("invalid Riot API key")
)

// Store reads and writes the per-user KEY=value config file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore returns a store backed by <UserConfigDir>/Despectus/.env
// (on Windows this resolves under %APPDATA%, matching the installer layout).
func DefaultStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("could not find user config directory: %w", err)
	}
	return NewStore(filepath.Join(configDir, "Despectus", ".env")), nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads Settings from disk. A missing file yields ErrMissing and an
// unparseable one ErrMalformed; both come with defaults so the app can keep
// running in a degraded state until a valid key is supplied.
func (s *Store) Load() (Settings, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return DefaultSettings(), ErrMissing
	}

	env, err := godotenv.Read(s.path)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	settings := DefaultSettings()
	settings.APIKey = strings.TrimSpace(env[KeyAPIKey])

	if raw, ok := env[KeyAvgLPPerWin]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return DefaultSettings(), fmt.Errorf("%w: %s=%q", ErrMalformed, KeyAvgLPPerWin, raw)
		}
		settings.AvgLPPerWin = n
	}
	if raw, ok := env[KeyRefreshSeconds]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return DefaultSettings(), fmt.Errorf("%w: %s=%q", ErrMalformed, KeyRefreshSeconds, raw)
		}
		settings.RefreshSeconds = n
	}

	return settings, nil
}

// Save writes Settings to disk, creating the config directory if needed.
// Keys already present in the file but not managed here are preserved.
func (s *Store) Save(settings Settings) error {
	env := s.readExisting()
	env[KeyAPIKey] = strings.TrimSpace(settings.APIKey)
	env[KeyAvgLPPerWin] = strconv.Itoa(settings.AvgLPPerWin)
	env[KeyRefreshSeconds] = strconv.Itoa(settings.RefreshSeconds)
	return s.write(env)
}

// ValidateAPIKey checks the candidate key's shape: non-empty after trimming
// and free of whitespace. Whether the key is actually accepted by Riot is the
// API client's concern, not ours.
func ValidateAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	if strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("%w: key contains whitespace", ErrInvalidKey)
	}
	return nil
}

// SaveAPIKey validates and persists a candidate API key, returning the
// resulting Settings. On validation failure the file is left untouched.
func (s *Store) SaveAPIKey(key string) (Settings, error) {
	if err := ValidateAPIKey(key); err != nil {
		return Settings{}, err
	}

	env := s.readExisting()
	env[KeyAPIKey] = strings.TrimSpace(key)
	if _, ok := env[KeyAvgLPPerWin]; !ok {
		env[KeyAvgLPPerWin] = strconv.Itoa(DefaultAvgLPPerWin)
	}
	if _, ok := env[KeyRefreshSeconds]; !ok {
		env[KeyRefreshSeconds] = strconv.Itoa(DefaultRefreshSeconds)
	}
	if err := s.write(env); err != nil {
		return Settings{}, err
	}

	return s.Load()
}

// Get returns the raw value of a single config key.
func (s *Store) Get(name string) (string, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return "", ErrMissing
	}
	env, err := godotenv.Read(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	value, ok := env[name]
	if !ok {
		return "", fmt.Errorf("unknown config key: %s", name)
	}
	return value, nil
}

// All returns every key/value pair in the config file, including keys this
// program does not manage.
func (s *Store) All() (map[string]string, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, ErrMissing
	}
	env, err := godotenv.Read(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return env, nil
}

// Set updates a single config key, persisting immediately. Numeric keys are
// validated; setting the API key goes through the usual shape check.
func (s *Store) Set(name, value string) error {
	switch name {
	case KeyAPIKey:
		if err := ValidateAPIKey(value); err != nil {
			return err
		}
		value = strings.TrimSpace(value)
	case KeyAvgLPPerWin, KeyRefreshSeconds:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", name, value)
		}
		value = strconv.Itoa(n)
	default:
		return fmt.Errorf("unknown config key: %s", name)
	}

	env := s.readExisting()
	env[name] = value
	return s.write(env)
}

// InstallTemplate writes a default config file only if none exists yet, so
// reinstalls and upgrades never clobber user settings.
func (s *Store) InstallTemplate() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	return s.Save(DefaultSettings())
}

// readExisting returns the current file contents as a map, or an empty map
// when the file is absent or unreadable (a fresh save recovers from both).
func (s *Store) readExisting() map[string]string {
	env, err := godotenv.Read(s.path)
	if err != nil {
		return map[string]string{}
	}
	return env
}

// write persists the env map as plain KEY=value lines, managed keys first in
// a fixed order, any extra keys after them sorted for stable output.
func (s *Store) write(env map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	managed := []string{KeyAPIKey, KeyAvgLPPerWin, KeyRefreshSeconds}
	var b strings.Builder
	for _, k := range managed {
		if v, ok := env[k]; ok {
			fmt.Fprintf(&b, "%s=%s\n", k, v)
		}
	}

	var extras []string
	for k := range env {
		if k != KeyAPIKey && k != KeyAvgLPPerWin && k != KeyRefreshSeconds {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		fmt.Fprintf(&b, "%s=%s\n", k, env[k])
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o600); err != nil {
		// 0o600 keeps the API key readable by the owner only.
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
