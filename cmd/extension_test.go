package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// installExtension writes an rcl-<name> shell script on a fresh PATH.
func installExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in tests")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "rcl-"+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestExtension(t *testing.T) {
	installExtension(t, "hello", `echo "$RCL_CONFIG $RCL_VERBOSE $@"`)
	*configFile = "team.yaml"
	t.Cleanup(func() { *configFile = "" })

	cmd, err := extension("hello", []string{"old.json", "new.json"})
	if err != nil {
		t.Fatalf("extension() error = %v", err)
	}
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("running rcl-hello: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "team.yaml false old.json new.json" {
		t.Errorf("rcl-hello printed %q", got)
	}
}

func TestRunExtension(t *testing.T) {
	installExtension(t, "fail", "exit 3\n")

	found, code := RunExtension("fail", nil)
	if !found || code != 3 {
		t.Errorf("RunExtension(fail) = %v, %d want true, 3", found, code)
	}

	if found, _ := RunExtension("missing-extension", nil); found {
		t.Errorf("RunExtension(missing-extension) found an extension")
	}
}
