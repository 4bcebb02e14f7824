package cli

import (
	"reflect"
	"testing"
)

// MockRegistryChecker provides a mock implementation for testing.
type MockRegistryChecker struct {
	KnownCommands map[string]bool
}

// CommandExists checks if a command name exists in the mock registry.
func (m MockRegistryChecker) CommandExists(name string) bool {
	_, exists := m.KnownCommands[name]
	return exists
}

// TestParseCommandLineArgs tests the argument parser.
func TestParseCommandLineArgs(t *testing.T) {
	mockRegistry := MockRegistryChecker{
		KnownCommands: map[string]bool{
			"config set":  true, // Multi-word
			"config get":  true,
			"config list": true,
			"key set":     true,
			"refresh":     true,
		},
	}

	testCases := []struct {
		name     string
		args     []string
		expected CommandArgs
	}{
		{
			name: "No Args",
			args: []string{},
			expected: CommandArgs{
				RawArgs:   []string{},
				Variables: []string{},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
		{
			name: "Version Flag",
			args: []string{"--version"},
			expected: CommandArgs{
				RawArgs:          []string{"--version"},
				VersionRequested: true,
				Variables:        []string{},
				Flags:            map[string]string{},
				BoolFlags:        map[string]bool{},
				Errors:           []error{},
			},
		},
		{
			name: "General Help Flag",
			args: []string{"--help"},
			expected: CommandArgs{
				RawArgs:       []string{"--help"},
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
				Errors:        []error{},
			},
		},
		{
			name: "Command Specific Help",
			args: []string{"refresh", "--help"},
			expected: CommandArgs{
				RawArgs:       []string{"refresh", "--help"},
				CommandName:   "refresh",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
				Errors:        []error{},
			},
		},
		{
			name: "Multi-word command with variables",
			args: []string{"config", "set", "AVG_LP_PER_WIN", "25"},
			expected: CommandArgs{
				RawArgs:     []string{"config", "set", "AVG_LP_PER_WIN", "25"},
				CommandName: "config set",
				Variables:   []string{"AVG_LP_PER_WIN", "25"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Single-word command",
			args: []string{"refresh"},
			expected: CommandArgs{
				RawArgs:     []string{"refresh"},
				CommandName: "refresh",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Unknown command treated as variable",
			args: []string{"bogus"},
			expected: CommandArgs{
				RawArgs:   []string{"bogus"},
				Variables: []string{"bogus"},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
		{
			name: "Value flag with equals",
			args: []string{"key", "set", "RGAPI-abc", "--path=/tmp/.env"},
			expected: CommandArgs{
				RawArgs:     []string{"key", "set", "RGAPI-abc", "--path=/tmp/.env"},
				CommandName: "key set",
				Variables:   []string{"RGAPI-abc"},
				Flags:       map[string]string{"path": "/tmp/.env"},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Value flag with separate value",
			args: []string{"config", "list", "--path", "/tmp/.env"},
			expected: CommandArgs{
				RawArgs:     []string{"config", "list", "--path", "/tmp/.env"},
				CommandName: "config list",
				Variables:   []string{},
				Flags:       map[string]string{"path": "/tmp/.env"},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Boolean flag",
			args: []string{"refresh", "--json"},
			expected: CommandArgs{
				RawArgs:     []string{"refresh", "--json"},
				CommandName: "refresh",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"json": true},
				Errors:      []error{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCommandLineArgs(tc.args, mockRegistry)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ParseCommandLineArgs(%v)\n got: %+v\nwant: %+v", tc.args, got, tc.expected)
			}
		})
	}
}

func TestParseDuplicateFlagError(t *testing.T) {
	mockRegistry := MockRegistryChecker{KnownCommands: map[string]bool{"refresh": true}}

	got := ParseCommandLineArgs([]string{"refresh", "--json", "--json"}, mockRegistry)
	if len(got.Errors) != 1 {
		t.Fatalf("expected 1 parse error, got %d: %v", len(got.Errors), got.Errors)
	}
}
