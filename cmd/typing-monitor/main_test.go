package main

import (
	"strings"
	"testing"
)

func TestRun_UnknownCommand(t *testing.T) {
	err := runConfigCommand("", []string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown config subcommand") {
		t.Errorf("error = %v, want unknown subcommand", err)
	}
}

func TestRunSummaryCommand_RequiresSessionID(t *testing.T) {
	err := runSummaryCommand("", []string{})
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Errorf("error = %v, want usage error", err)
	}
}

func TestRunStatsCommand_RequiresSessionID(t *testing.T) {
	err := runStatsCommand("", []string{})
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Errorf("error = %v, want usage error", err)
	}
}

func TestRunDeleteCommand_RequiresSessionID(t *testing.T) {
	err := runDeleteCommand("", []string{})
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Errorf("error = %v, want usage error", err)
	}
}

func TestShowUsage(t *testing.T) {
	if err := showUsage(); err != nil {
		t.Errorf("showUsage() error = %v", err)
	}
}
