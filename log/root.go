package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

const (
	VMModule     = "vm_mod"     // instruction traces
	SearchModule = "search_mod" // noun/verb search
	SolverModule = "solver_mod" // puzzle solvers
)

const (
	LevelTrace slog.Level = -8
	LevelDebug            = slog.LevelDebug
	LevelInfo             = slog.LevelInfo
	LevelWarn             = slog.LevelWarn
	LevelError            = slog.LevelError
)

var root atomic.Pointer[slog.Logger]

func init() {
	root.Store(slog.New(discardHandler{}))
}

func ParseLevel(lvl string) (slog.Level, error) {
	switch strings.ToUpper(lvl) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("invalid level: %s", lvl)
	}
}

// InitLogger installs a text logger on stderr at the given level.
func InitLogger(logLevel string) error {
	lvl, err := ParseLevel(logLevel)
	if err != nil {
		return err
	}
	SetDefault(slog.New(NewTerminalHandler(os.Stderr, lvl)))
	return nil
}

func NewTerminalHandler(w io.Writer, lvl slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && a.Value.Any() == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	})
}

// SetDefault sets the default global logger
func SetDefault(l *slog.Logger) {
	root.Store(l)
}

// Root returns the root logger
func Root() *slog.Logger {
	return root.Load()
}

// --- Module management ---

var (
	modulesMu     sync.RWMutex
	moduleEnabled = map[string]bool{}
)

func EnableModule(module string) {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	moduleEnabled[module] = true
}

func DisableModule(module string) {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	moduleEnabled[module] = false
}

// EnableModules enables a comma separated list of modules.
func EnableModules(modules string) {
	for _, m := range strings.Split(modules, ",") {
		if m = strings.TrimSpace(m); m != "" {
			EnableModule(m)
		}
	}
}

func isModuleEnabled(module string) bool {
	modulesMu.RLock()
	defer modulesMu.RUnlock()
	return moduleEnabled[module]
}

func write(level slog.Level, module string, msg string, ctx ...any) {
	l := Root()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, msg, append([]any{"module", module}, ctx...)...)
}

// Trace and Debug only log for enabled modules.
func Trace(module string, msg string, ctx ...any) {
	if !isModuleEnabled(module) {
		return
	}
	write(LevelTrace, module, msg, ctx...)
}

func Debug(module string, msg string, ctx ...any) {
	if !isModuleEnabled(module) {
		return
	}
	write(slog.LevelDebug, module, msg, ctx...)
}

func Info(module string, msg string, ctx ...any) {
	write(slog.LevelInfo, module, msg, ctx...)
}

func Warn(module string, msg string, ctx ...any) {
	write(slog.LevelWarn, module, msg, ctx...)
}

func Error(module string, msg string, ctx ...any) {
	write(slog.LevelError, module, msg, ctx...)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
