package lcu

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrClientNotRunning indicates no League client process (or usable
// lockfile) was found on this machine.
var ErrClientNotRunning = errors.New("league client not running")

// Auth holds the loopback API credentials from the client's lockfile.
type Auth struct {
	Port     int
	Password string
	Protocol string
}

// BaseURL returns the loopback origin of the client API.
func (a Auth) BaseURL() string {
	return fmt.Sprintf("%s://127.0.0.1:%d", a.Protocol, a.Port)
}

// clientProcessNames covers the modern client and its launcher.
var clientProcessNames = map[string]bool{
	"LeagueClientUx.exe": true,
	"LeagueClient.exe":   true,
	// Names without the .exe suffix show up under Wine/Proton wrappers.
	"LeagueClientUx": true,
	"LeagueClient":   true,
}

// ParseLockfile parses the colon-separated lockfile content:
// processName:pid:port:password:protocol
func ParseLockfile(raw string) (Auth, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 5 {
		return Auth{}, fmt.Errorf("lockfile has %d fields, want 5", len(parts))
	}
	port, err := strconv.Atoi(parts[2])
	if err != nil {
		return Auth{}, fmt.Errorf("invalid lockfile port %q: %w", parts[2], err)
	}
	return Auth{Port: port, Password: parts[3], Protocol: parts[4]}, nil
}

// findClientProcess scans running processes for the League client.
func findClientProcess() (*process.Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		if clientProcessNames[name] {
			return p, nil
		}
	}
	return nil, ErrClientNotRunning
}

// lockfileNear walks up from the client executable looking for the lockfile.
// LeagueClientUx.exe often lives a few directories below the install root
// where the lockfile sits.
func lockfileNear(exePath string) (string, bool) {
	dir := filepath.Dir(exePath)
	for i := 0; i < 6; i++ {
		candidate := filepath.Join(dir, "lockfile")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// ReadLockfile locates the running client and parses its lockfile.
func ReadLockfile() (Auth, error) {
	proc, err := findClientProcess()
	if err != nil {
		return Auth{}, err
	}

	exePath, err := proc.Exe()
	if err != nil {
		return Auth{}, fmt.Errorf("%w: %v", ErrClientNotRunning, err)
	}

	path, ok := lockfileNear(exePath)
	if !ok {
		return Auth{}, fmt.Errorf("%w: lockfile not found near %s", ErrClientNotRunning, exePath)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Auth{}, fmt.Errorf("%w: %v", ErrClientNotRunning, err)
	}
	return ParseLockfile(string(raw))
}

// WaitForClient polls for the client until it appears or ctx ends.
func WaitForClient(ctx context.Context) (Auth, error) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		if auth, err := ReadLockfile(); err == nil {
			return auth, nil
		}
		select {
		case <-ctx.Done():
			return Auth{}, ctx.Err()
		case <-ticker.C:
		}
	}
}
