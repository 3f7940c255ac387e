// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets CACHECTL_CFG to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("CACHECTL_CFG", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Contains(t, cfg.Data, "dir")
				assert.Equal(t, "/var/cache/cachectl", cfg.Data["dir"])
				assert.Equal(t, "gob", cfg.Data["format"])
			},
		},
		{
			name:     "nested namespaced values",
			testFile: "nested.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				ls, ok := cfg.Data["ls"].(map[string]interface{})
				assert.True(t, ok, "ls should be a map")
				assert.Equal(t, "-size", ls["sort"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	// An explicit path wins over CACHECTL_CFG and the standard locations.
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	nestedPath, err := filepath.Abs(filepath.Join("testdata", "nested.yaml"))
	assert.NoError(t, err)

	cfg, err := Load(nestedPath)
	assert.NoError(t, err)
	assert.Equal(t, nestedPath, cfg.Source)
	assert.Contains(t, cfg.Data, "ls")

	// An empty path falls through to the standard search.
	cfg, err = Load("")
	assert.NoError(t, err)
	assert.Equal(t, "/var/cache/cachectl", cfg.Data["dir"])
}

func TestGetString(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	got, err := GetString("dir")
	assert.NoError(t, err)
	assert.Equal(t, "/var/cache/cachectl", got)

	// Missing key falls back to the provided default.
	got, err = GetString("nope", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "fallback", got)

	// Missing key with no default is an error.
	_, err = GetString("nope")
	assert.Error(t, err)
}

func TestGetStringNamespaced(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	Config.Namespace = "ls"
	defer func() { Config.Namespace = "" }()

	got, err := GetString("sort")
	assert.NoError(t, err)
	assert.Equal(t, "-size", got)
}

func TestGetInt(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	got, err := GetInt("verbosity")
	assert.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = GetInt("nope", 9)
	assert.NoError(t, err)
	assert.Equal(t, 9, got)

	// Wrong type is an error, not a zero.
	_, err = GetInt("dir")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	got, err := GetBool("titles")
	assert.NoError(t, err)
	assert.True(t, got)

	got, err = GetBool("nope", false)
	assert.NoError(t, err)
	assert.False(t, got)
}
