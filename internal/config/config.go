package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pmoracho/tmenu/internal/app"
)

// DefaultMenuFile is used when no positional argument names one.
const DefaultMenuFile = "tmenu.toon"

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuFile   = "TMENU_MENU_FILE"
	envWidth      = "TMENU_WIDTH"
	envHeight     = "TMENU_HEIGHT"
	envShowFooter = "TMENU_FOOTER"
	envWatch      = "TMENU_WATCH"
	envDebug      = "TMENU_DEBUG"
	envTrace      = "TMENU_TRACE"
	envLogFile    = "TMENU_LOG_FILE"
	envConfigFile = "TMENU_CONFIG"
)

// Load parses configuration from CLI arguments, environment variables,
// and the optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
// Precedence: flags > environment > config file > built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	file := loadFileDefaults(env)

	fs := flag.NewFlagSet("tmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, file.intOr("width", 0)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.intOr("height", 0)), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, file.boolOr("footer", false)), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, file.boolOr("watch", false)), "reload the menu when the file changes")
	debug := fs.Bool("debug", envOrBool(env, envDebug, file.boolOr("debug", false)), "enable debug diagnostics (implies trace logging)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.boolOr("trace", false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.strOr("log_file", "")), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("expected at most one menu file argument, got %d", fs.NArg())
	}

	menuFile := envOrDefault(env, envMenuFile, file.strOr("menu_file", DefaultMenuFile))
	if fs.NArg() == 1 {
		menuFile = fs.Arg(0)
	}

	cfg := Config{
		App: app.Config{
			MenuFile:   menuFile,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Watch:      *watch,
			Debug:      *debug,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace || *debug,
		},
		Flags: map[string]string{
			"menuFile": menuFile,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"watch":    strconv.FormatBool(*watch),
			"debug":    strconv.FormatBool(*debug),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
