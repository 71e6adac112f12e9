package main

import "testing"

func TestCountProfiles(t *testing.T) {
	keys := []string{
		"ssh:alice:orbs",
		"ssh:alice:playerId",
		"ssh:bob:playerId",
		"ssh:bob:highScore",
		"ssh:carol:orbs",
	}
	if got := countProfiles(keys); got != 2 {
		t.Errorf("countProfiles = %d, want 2", got)
	}
	if got := countProfiles(nil); got != 0 {
		t.Errorf("countProfiles(nil) = %d, want 0", got)
	}
}
