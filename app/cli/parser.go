package cli

import (
	"fmt"
	"strings"
)

// CommandRegistryChecker defines an interface for checking if a command name
// exists. This avoids a direct dependency cycle between cli and commands.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string
	Description string
	Required    bool
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // long name (e.g., "queue")
	ShortName   string // short name (e.g., "q"), empty if none
	Description string
	HasValue    bool // whether the flag expects a value
	Required    bool
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string
	CommandName      string // e.g., "config set"
	Variables        []string
	Flags            map[string]string
	BoolFlags        map[string]bool
	HelpRequested    bool
	VersionRequested bool
	Errors           []error
}

// ParseCommandLineArgs processes raw command-line arguments. Multi-word
// command names ("config set") are recognized through the registry checker
// before single words, so "config set key value" parses with two variables.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	// Global flags count regardless of position.
	for _, arg := range rawArgs {
		if arg == "--help" || arg == "-h" {
			parsed.HelpRequested = true
		} else if arg == "--version" {
			parsed.VersionRequested = true
		}
	}

	args := make([]string, len(rawArgs))
	copy(args, rawArgs)

	// Find the first two non-flag words; together they may form a
	// multi-word command name.
	firstWord, secondWord := -1, -1
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if firstWord == -1 {
			firstWord = i
		} else {
			secondWord = i
			break
		}
	}

	rest := args
	if firstWord != -1 {
		if secondWord != -1 && registry.CommandExists(args[firstWord]+" "+args[secondWord]) {
			parsed.CommandName = args[firstWord] + " " + args[secondWord]
			rest = rest[:0:0]
			for i, arg := range args {
				if i != firstWord && i != secondWord {
					rest = append(rest, arg)
				}
			}
		} else if registry.CommandExists(args[firstWord]) {
			parsed.CommandName = args[firstWord]
			rest = append(args[:firstWord:firstWord], args[firstWord+1:]...)
		}
	}

	// Parse flags and positional variables from whatever is left.
	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		if arg == "--version" {
			continue
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			value := ""
			hasValue := false
			if strings.Contains(name, "=") {
				parts := strings.SplitN(name, "=", 2)
				name, value = parts[0], parts[1]
				hasValue = true
			} else if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				value = rest[i+1]
				hasValue = true
				i++
			}
			if hasValue {
				if _, exists := parsed.Flags[name]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("flag provided more than once: --%s", name))
				}
				parsed.Flags[name] = value
			} else {
				if _, exists := parsed.BoolFlags[name]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: --%s", name))
				}
				parsed.BoolFlags[name] = true
			}

		case strings.HasPrefix(arg, "-"):
			chars := strings.TrimPrefix(arg, "-")
			if len(chars) == 0 {
				parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
				continue
			}
			potentialValue := ""
			if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				potentialValue = rest[i+1]
			}
			valueConsumed := false
			for j, c := range chars {
				name := string(c)
				if j == len(chars)-1 && potentialValue != "" {
					if _, exists := parsed.Flags[name]; exists {
						parsed.Errors = append(parsed.Errors, fmt.Errorf("flag provided more than once: -%s", name))
					}
					parsed.Flags[name] = potentialValue
					valueConsumed = true
				} else {
					if _, exists := parsed.BoolFlags[name]; exists {
						parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: -%s", name))
					}
					parsed.BoolFlags[name] = true
				}
			}
			if valueConsumed {
				i++
			}

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	return parsed
}
