package main

import (
	"testing"

	"github.com/amonks/ggc/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func runScripts(t *testing.T, dir string) {
	t.Helper()
	testscript.Run(t, testscript.Params{
		Dir: dir,
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}

func TestShellScripts(t *testing.T) {
	runScripts(t, "testdata/shell")
}

func TestDaysScripts(t *testing.T) {
	runScripts(t, "testdata/days")
}

func TestConfigScripts(t *testing.T) {
	runScripts(t, "testdata/config")
}

func TestVersionScripts(t *testing.T) {
	runScripts(t, "testdata/version")
}

func TestHelpScripts(t *testing.T) {
	runScripts(t, "testdata/help")
}
