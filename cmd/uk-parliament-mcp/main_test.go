package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/janisz/uk-parliament-mcp/internal/config"
)

// TestConstants verifies application constants
func TestConstants(t *testing.T) {
	if version == "" {
		t.Error("version should not be empty")
	}
	if appName != "uk-parliament-mcp" {
		t.Errorf("Expected appName to be 'uk-parliament-mcp', got '%s'", appName)
	}
}

func TestVersionOutput(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		cmd := newRootCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: unexpected error: %v", args, err)
		}
		expected := "uk-parliament-mcp version " + version + "\n"
		if out.String() != expected {
			t.Errorf("%v: expected %q, got %q", args, expected, out.String())
		}
	}
}

func TestHelpMentionsModes(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	help := out.String()
	for _, want := range []string{"--stdio", "--sse", "--http", "--addr", "--cache", "PARLIAMENT_MCP_", "Examples:"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output should mention %q", want)
		}
	}
}

func TestModesAreMutuallyExclusive(t *testing.T) {
	cases := [][]string{
		{"--sse", "--http"},
		{"--stdio", "--sse"},
		{"--stdio", "--http"},
	}
	for _, args := range cases {
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)

		err := cmd.Execute()
		if err == nil {
			t.Fatalf("%v: expected an error for conflicting modes", args)
		}
		if !strings.Contains(err.Error(), "none of the others can be") {
			t.Errorf("%v: unexpected error: %v", args, err)
		}
	}
}

func TestRejectsPositionalArguments(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"serve"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unknown positional argument")
	}
}

func TestResolveMode(t *testing.T) {
	cases := []struct {
		args     []string
		expected string
	}{
		{nil, ""},
		{[]string{"--stdio"}, config.ModeStdio},
		{[]string{"--sse"}, config.ModeSSE},
		{[]string{"--http"}, config.ModeHTTP},
	}
	for _, tc := range cases {
		cmd := newRootCommand()
		if err := cmd.ParseFlags(tc.args); err != nil {
			t.Fatalf("%v: parse failed: %v", tc.args, err)
		}
		mode, err := resolveMode(cmd)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tc.args, err)
		}
		if mode != tc.expected {
			t.Errorf("%v: expected mode %q, got %q", tc.args, tc.expected, mode)
		}
	}
}

func TestCollectOverridesOnlyChangedFlags(t *testing.T) {
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--http", "--addr", ":9000", "--cache"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	overrides, err := collectOverrides(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]any{
		"server.mode":   config.ModeHTTP,
		"server.addr":   ":9000",
		"cache.enabled": true,
	}
	if len(overrides) != len(expected) {
		t.Fatalf("expected %d overrides, got %v", len(expected), overrides)
	}
	for key, value := range expected {
		if overrides[key] != value {
			t.Errorf("override %s: expected %v, got %v", key, value, overrides[key])
		}
	}
}

func TestLoadConfigFlagsWinOverEnvironment(t *testing.T) {
	t.Setenv("PARLIAMENT_MCP_SERVER_MODE", "sse")
	t.Setenv("PARLIAMENT_MCP_SERVER_ADDR", ":7000")
	t.Setenv("PARLIAMENT_MCP_FETCH_TIMEOUT", "5s")

	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--http", "--debug"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Mode != config.ModeHTTP {
		t.Errorf("expected mode from flag, got %q", cfg.Server.Mode)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("expected addr from environment, got %q", cfg.Server.Addr)
	}
	if !cfg.Log.Debug {
		t.Error("expected debug to be enabled by flag")
	}

	settings := serverConfig(cfg)
	if settings.Fetch.Timeout != 5*time.Second {
		t.Errorf("expected fetch timeout 5s, got %v", settings.Fetch.Timeout)
	}
	if !settings.DebugMode {
		t.Error("expected server debug mode")
	}
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"--env-file", t.TempDir() + "/missing.env"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := loadConfig(cmd); err == nil {
		t.Error("expected an error for a missing env file")
	}
}
