// Package hooks runs user scripts on tab strip events for extensibility.
package hooks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Hook points. Each is a subdirectory of the hooks directory holding
// executable scripts, run in lexical order.
const (
	PointPreSelect     = "pre-select"
	PointPostSelect    = "post-select"
	PointLongPress     = "long-press"
	PointPostConfigure = "post-configure"
)

// Environment variables passed to hook scripts.
const (
	EnvTabID       = "TABSTRIP_TAB_ID"
	EnvInteraction = "TABSTRIP_INTERACTION"
	EnvTabCount    = "TABSTRIP_TAB_COUNT"
)

var (
	// async tracking
	asyncPending      sync.WaitGroup
	asyncPendingMu    sync.Mutex
	asyncPendingCount int
)

var (
	initMu      sync.Mutex
	initialized bool
)

// Init ensures the hooks directory exists. Safe to call more than once.
func Init() error {
	config.Load()
	initMu.Lock()
	defer initMu.Unlock()
	if initialized {
		return nil
	}
	dir := Dir()
	if err := os.MkdirAll(dir, config.FileModeDir); err != nil {
		colors.Error(fmt.Sprintf("failed to create hooks directory %s: %v", dir, err))
		return fmt.Errorf("failed to create hooks directory %s: %w", dir, err)
	}
	initialized = true
	return nil
}

// Dir returns the hooks directory path.
func Dir() string {
	config.Load()
	// Environment variable takes precedence.
	if dir := os.Getenv("TABSTRIP_HOOKS_DIR"); dir != "" {
		return dir
	}
	if dir := config.Get("hooks_dir", ""); dir != "" {
		return dir
	}
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return filepath.Join(configDir, "tabstrip", "hooks")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tabstrip", "hooks")
}

// RunSelection fires the hook point matching an interaction event with
// the tab id and interaction kind in the script environment.
func RunSelection(event tabs.InteractionEvent) error {
	point := PointPostSelect
	if event.Kind == tabs.InteractionLongPress {
		point = PointLongPress
	}
	return Run(point,
		EnvTabID+"="+event.TabID,
		EnvInteraction+"="+event.Kind.String(),
	)
}

// Run executes the scripts of a hook point with extra KEY=VALUE
// environment entries. A missing directory means no hooks. Only an
// abort failure mode surfaces script errors.
func Run(point string, envVars ...string) error {
	config.Load()
	if !config.GetBool("hooks_enabled", true) {
		return nil
	}
	if !pointEnabled(point) {
		return nil
	}

	hookDir := filepath.Join(Dir(), point)
	files, err := os.ReadDir(hookDir)
	if err != nil {
		// Directory doesn't exist -> no hooks
		return nil
	}

	envMap := map[string]string{
		"HOOK_POINT":                  point,
		"HOOK_TIMESTAMP":              time.Now().Format(time.RFC3339),
		"TABSTRIP_HOOKS_FAILURE_MODE": failureMode(),
	}
	if binary := binaryPath(); binary != "" {
		envMap["TABSTRIP_BINARY"] = binary
	}
	for _, v := range envVars {
		parts := strings.SplitN(v, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}

	type scriptInfo struct {
		path string
		name string
	}
	scripts := []scriptInfo{}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		scriptPath := filepath.Join(hookDir, f.Name())
		info, err := os.Stat(scriptPath)
		if err != nil || info.Mode()&0111 == 0 {
			// Not executable
			continue
		}
		scripts = append(scripts, scriptInfo{path: scriptPath, name: f.Name()})
	}
	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].name < scripts[j].name
	})
	if len(scripts) == 0 {
		return nil
	}

	colors.Debug(fmt.Sprintf("running %s hooks (%d script(s))", point, len(scripts)))

	mode := failureMode()
	asyncEnabled := config.GetBool("hooks_async", false)
	maxAsync := config.GetInt("max_hooks", 10)

	for _, script := range scripts {
		if asyncEnabled {
			asyncPendingMu.Lock()
			if asyncPendingCount >= maxAsync {
				asyncPendingMu.Unlock()
				colors.Warning(fmt.Sprintf("too many async hooks pending (max: %d), skipping %s", maxAsync, script.name))
				continue
			}
			asyncPendingCount++
			asyncPending.Add(1)
			asyncPendingMu.Unlock()
			go runAsyncHook(script.path, script.name, envMap, mode)
		} else {
			if err := runSyncHook(script.path, script.name, envMap, mode); err != nil {
				if mode == "abort" {
					return err
				}
				// warn or ignore: continue
			}
		}
	}
	return nil
}

// pointEnabled consults the per-point toggle, e.g.
// hooks_enabled_post_select for the post-select point.
func pointEnabled(point string) bool {
	key := "hooks_enabled_" + strings.ReplaceAll(point, "-", "_")
	return config.GetBool(key, true)
}

func failureMode() string {
	mode := config.Get("hooks_failure_mode", "warn")
	switch mode {
	case "abort", "warn", "ignore":
		return mode
	}
	return "warn"
}

func asyncTimeout() time.Duration {
	seconds := config.GetInt("hooks_async_timeout", 30)
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

// binaryPath locates the tabstrip binary so hooks can call back into it.
func binaryPath() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		if filepath.IsAbs(os.Args[0]) {
			return os.Args[0]
		}
		if path, err := exec.LookPath(os.Args[0]); err == nil {
			return path
		}
	}
	return ""
}

// runSyncHook executes a hook script synchronously.
func runSyncHook(scriptPath, scriptName string, envMap map[string]string, mode string) error {
	start := time.Now()
	cmd := exec.Command(scriptPath)
	cmd.Env = os.Environ()
	for k, v := range envMap {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)
	// Hook output goes to stderr so it lands in logs.
	if len(output) > 0 {
		os.Stderr.Write(output)
	}
	if err != nil {
		switch mode {
		case "abort":
			return fmt.Errorf("hook %s failed: %v, output: %s", scriptName, err, output)
		case "warn":
			colors.Warning(fmt.Sprintf("hook %s failed: %v", scriptName, err))
		case "ignore":
			// do nothing
		}
		return nil
	}
	colors.Debug(fmt.Sprintf("hook %s completed in %.2fs", scriptName, duration.Seconds()))
	return nil
}

// runAsyncHook executes a hook script asynchronously with a timeout.
func runAsyncHook(scriptPath, scriptName string, envMap map[string]string, mode string) {
	ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout())
	cmd := exec.CommandContext(ctx, scriptPath)
	cmd.Env = os.Environ()
	for k, v := range envMap {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		cancel()
		if mode != "ignore" {
			colors.Warning(fmt.Sprintf("async hook %s failed to start: %v", scriptName, err))
		}
		asyncPendingMu.Lock()
		asyncPendingCount--
		asyncPendingMu.Unlock()
		asyncPending.Done()
		return
	}
	startTime := time.Now()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				colors.Error(fmt.Sprintf("async hook %s panicked: %v", scriptName, r))
			}
			asyncPendingMu.Lock()
			asyncPendingCount--
			asyncPendingMu.Unlock()
			asyncPending.Done()
			cancel()
		}()

		err := cmd.Wait()
		duration := time.Since(startTime)

		if ctx.Err() == context.DeadlineExceeded {
			colors.Warning(fmt.Sprintf("async hook %s timed out after %.2fs", scriptName, duration.Seconds()))
		}
		if err != nil && mode != "ignore" {
			colors.Warning(fmt.Sprintf("async hook %s failed: %v (duration: %.2fs)", scriptName, err, duration.Seconds()))
		} else if err == nil {
			colors.Debug(fmt.Sprintf("async hook %s completed in %.2fs", scriptName, duration.Seconds()))
		}
	}()
}

// ResetForTesting resets internal state for testing.
// Precondition: All async hooks must have completed before calling this.
// Violating this precondition will cause a panic (fail-fast).
func ResetForTesting() {
	asyncPendingMu.Lock()
	defer asyncPendingMu.Unlock()
	if asyncPendingCount > 0 {
		panic(fmt.Sprintf("ResetForTesting called with %d pending hooks. Call WaitForPendingHooks() first.", asyncPendingCount))
	}
	asyncPendingCount = 0
	asyncPending = sync.WaitGroup{}
	initMu.Lock()
	initialized = false
	initMu.Unlock()
}

// WaitForPendingHooks waits for all pending async hooks to complete.
func WaitForPendingHooks() {
	asyncPending.Wait()
}

// Shutdown gracefully shuts down the hooks subsystem.
func Shutdown() {
	WaitForPendingHooks()
}
