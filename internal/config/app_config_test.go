package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Diplo2by/riptree/internal/utils"
)

type configTestCase struct {
	name                 string
	globalContent        string
	localContent         string
	explicitPath         string
	explicitContent      string
	expectFormat         string
	expectIcons          *bool
	expectTokens         *bool
	expectModel          string
	expectDirectoryCount string
	expectThemeBase      string
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:                 "local_overrides_global",
			globalContent:        "icons: false\nformat: json\ndirectory_count: parents\n",
			localContent:         "format: xml\ntokens:\n  enabled: true\n  model: custom\n",
			expectFormat:         "xml",
			expectIcons:          boolPointer(false),
			expectTokens:         boolPointer(true),
			expectModel:          "custom",
			expectDirectoryCount: "parents",
		},
		{
			name:            "explicit_path_replaces_local",
			globalContent:   "format: json\n",
			localContent:    "format: xml\n",
			explicitPath:    "custom.yaml",
			explicitContent: "format: raw\nicons: true\n",
			expectFormat:    "raw",
			expectIcons:     boolPointer(true),
		},
		{
			name:            "relative_theme_anchored_at_config_file",
			localContent:    "theme: themes/dark.yaml\n",
			expectThemeBase: "themes/dark.yaml",
		},
		{
			name: "no_files",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.ConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.LocalConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				target := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(target, []byte(testCase.explicitContent), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
				HomeDirectory:    homeDir,
			})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}

			if loadedConfig.Format != testCase.expectFormat {
				t.Fatalf("expected format %q, got %q", testCase.expectFormat, loadedConfig.Format)
			}
			if testCase.expectIcons == nil {
				if loadedConfig.Icons != nil {
					t.Fatalf("expected no icons override")
				}
			} else if loadedConfig.Icons == nil || *loadedConfig.Icons != *testCase.expectIcons {
				t.Fatalf("unexpected icons value")
			}
			if testCase.expectTokens == nil {
				if loadedConfig.Tokens.Enabled != nil {
					t.Fatalf("expected no tokens override")
				}
			} else if loadedConfig.Tokens.Enabled == nil || *loadedConfig.Tokens.Enabled != *testCase.expectTokens {
				t.Fatalf("unexpected tokens enabled value")
			}
			if loadedConfig.Tokens.Model != testCase.expectModel {
				t.Fatalf("expected model %q, got %q", testCase.expectModel, loadedConfig.Tokens.Model)
			}
			if loadedConfig.DirectoryCount != testCase.expectDirectoryCount {
				t.Fatalf("expected directory count %q, got %q", testCase.expectDirectoryCount, loadedConfig.DirectoryCount)
			}
			if testCase.expectThemeBase != "" {
				expectedTheme := filepath.Join(workingDir, testCase.expectThemeBase)
				if loadedConfig.Theme != expectedTheme {
					t.Fatalf("expected theme %q, got %q", expectedTheme, loadedConfig.Theme)
				}
			}
		})
	}
}

func TestLoadApplicationConfigurationRequiresExplicitFile(t *testing.T) {
	_, err := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: t.TempDir(),
		ExplicitFilePath: "missing.yaml",
		HomeDirectory:    t.TempDir(),
	})
	if err == nil {
		t.Fatalf("expected error for missing explicit configuration")
	}
}

func TestLoadApplicationConfigurationRejectsMalformedYAML(t *testing.T) {
	workingDir := t.TempDir()
	localPath := filepath.Join(workingDir, utils.LocalConfigFileName)
	if err := os.WriteFile(localPath, []byte("format: [raw\n"), 0o600); err != nil {
		t.Fatalf("write local config: %v", err)
	}
	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir, HomeDirectory: t.TempDir()}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestMergeKeepsBaseWhenOverrideUnset(t *testing.T) {
	base := ApplicationConfiguration{Icons: boolPointer(false), Format: "json", Tokens: TokenConfiguration{Model: "gpt-4"}}
	merged := base.Merge(ApplicationConfiguration{Copy: boolPointer(true)})
	if merged.Icons == nil || *merged.Icons {
		t.Fatalf("expected icons to remain false")
	}
	if merged.Format != "json" || merged.Tokens.Model != "gpt-4" {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
	if !BoolOrDefault(merged.Copy, false) {
		t.Fatalf("expected copy override to apply")
	}
	if BoolOrDefault(nil, true) != true {
		t.Fatalf("expected fallback for nil pointer")
	}
}
