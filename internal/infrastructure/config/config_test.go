package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skilltrail/skilltrail/internal/infrastructure/storage"
)

func workspaceDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, storage.SkilltrailDir), 0700); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(workspaceDir(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.Provider != "ollama" || cfg.AI.Model != "llama3" {
		t.Errorf("AI defaults = %+v", cfg.AI)
	}
	if cfg.Server.Addr != "localhost:4477" {
		t.Errorf("server default = %q", cfg.Server.Addr)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	root := workspaceDir(t)

	cfg := Default()
	cfg.AI.Provider = "openai"
	cfg.AI.Model = "gpt-4o-mini"
	cfg.Server.Addr = "localhost:9999"

	if err := Save(root, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.AI.Provider != "openai" || loaded.AI.Model != "gpt-4o-mini" || loaded.Server.Addr != "localhost:9999" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoadFillsBlankFields(t *testing.T) {
	root := workspaceDir(t)
	path := filepath.Join(root, storage.SkilltrailDir, storage.ConfigFile)
	if err := os.WriteFile(path, []byte("ai:\n  provider: mock\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.Provider != "mock" {
		t.Errorf("provider = %q, want mock", cfg.AI.Provider)
	}
	if cfg.AI.Model != "llama3" || cfg.Server.Addr != "localhost:4477" {
		t.Errorf("blank fields not filled: %+v", cfg)
	}
}

func TestSaveNilConfig(t *testing.T) {
	if err := Save(workspaceDir(t), nil); err == nil {
		t.Error("saving a nil config should fail")
	}
}
