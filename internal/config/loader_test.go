package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	embedded := embeddedRunnerConfig()
	hard := DefaultRunnerConfig()

	if embedded.World != hard.World {
		t.Errorf("world: embedded %+v, hardcoded %+v", embedded.World, hard.World)
	}
	if embedded.Physics != hard.Physics {
		t.Errorf("physics: embedded %+v, hardcoded %+v", embedded.Physics, hard.Physics)
	}
	if embedded.Spawn != hard.Spawn {
		t.Errorf("spawn: embedded %+v, hardcoded %+v", embedded.Spawn, hard.Spawn)
	}
	if embedded.Difficulty != hard.Difficulty {
		t.Errorf("difficulty: embedded %+v, hardcoded %+v", embedded.Difficulty, hard.Difficulty)
	}
	if len(embedded.Obstacles.Kinds) != len(hard.Obstacles.Kinds) {
		t.Errorf("kinds: embedded %d, hardcoded %d", len(embedded.Obstacles.Kinds), len(hard.Obstacles.Kinds))
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hardcoded defaults invalid: %v", err)
	}
}

func TestLoadRunnerDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Spawn.BaseSpeed != 300 {
		t.Errorf("BaseSpeed = %v, want 300", cfg.Spawn.BaseSpeed)
	}
	if cfg.Difficulty.IntervalMs != 15000 {
		t.Errorf("IntervalMs = %v, want 15000", cfg.Difficulty.IntervalMs)
	}
	if _, ok := cfg.Obstacles.Kind("flying"); !ok {
		t.Error("flying kind missing from defaults")
	}
}

func TestLoadRunnerCustomYAMLOverlay(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", `
spawn:
  base_speed: 420
difficulty:
  max_speed: 800
`)

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Spawn.BaseSpeed != 420 {
		t.Errorf("BaseSpeed = %v, want 420", cfg.Spawn.BaseSpeed)
	}
	if cfg.Difficulty.MaxSpeed != 800 {
		t.Errorf("MaxSpeed = %v, want 800", cfg.Difficulty.MaxSpeed)
	}
	// Untouched keys keep their defaults.
	if cfg.Spawn.GroupChance != 0.3 {
		t.Errorf("GroupChance = %v, want 0.3", cfg.Spawn.GroupChance)
	}
	if cfg.Physics.JumpVelocity != -8 {
		t.Errorf("JumpVelocity = %v, want -8", cfg.Physics.JumpVelocity)
	}
}

func TestLoadRunnerCustomTOML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.toml", `
[physics]
jump_velocity = -10.0

[score]
distance_multiplier = 0.5
`)

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Physics.JumpVelocity != -10 {
		t.Errorf("JumpVelocity = %v, want -10", cfg.Physics.JumpVelocity)
	}
	if cfg.Score.DistanceMultiplier != 0.5 {
		t.Errorf("DistanceMultiplier = %v, want 0.5", cfg.Score.DistanceMultiplier)
	}
	if cfg.Physics.Gravity != 0.1 {
		t.Errorf("Gravity = %v, want default 0.1", cfg.Physics.Gravity)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.yaml"),
			wantErr: "failed to read config",
		},
		{
			name:    "malformed yaml",
			path:    writeFile(t, dir, "bad.yaml", "spawn: [not, a, map"),
			wantErr: "failed to parse config",
		},
		{
			name:    "invalid values",
			path:    writeFile(t, dir, "invalid.yaml", "physics:\n  jump_velocity: 5\n"),
			wantErr: "jump_velocity must be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRunner(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, dir, "configs/runner.yaml", "spawn:\n  base_speed: 350\n")
	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Spawn.BaseSpeed != 350 {
		t.Errorf("local config: BaseSpeed = %v, want 350", cfg.Spawn.BaseSpeed)
	}

	// The user directory wins over ./configs.
	writeFile(t, dir, ".runner/configs/runner.toml", "[spawn]\nbase_speed = 380.0\n")
	cfg, err = LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Spawn.BaseSpeed != 380 {
		t.Errorf("user config: BaseSpeed = %v, want 380", cfg.Spawn.BaseSpeed)
	}
	if got := ResolvePath(""); filepath.Base(got) != "runner.toml" {
		t.Errorf("ResolvePath = %q, want runner.toml", got)
	}
}

func TestParseRunnerUnknownFormat(t *testing.T) {
	if _, err := ParseRunner([]byte("x"), "ini"); err == nil {
		t.Error("expected error for unknown format")
	}
}
