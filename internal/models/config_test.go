package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAssetType(t *testing.T) {
	tests := []struct {
		input    string
		expected AssetType
		wantErr  bool
	}{
		{"prp", AssetTypeProp, false},
		{"prop", AssetTypeProp, false},
		{"Prop", AssetTypeProp, false},
		{"chr", AssetTypeCharacter, false},
		{"character", AssetTypeCharacter, false},
		{"res", AssetTypeResource, false},
		{"resource", AssetTypeResource, false},
		{"  res  ", AssetTypeResource, false},
		{"mesh", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAssetType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestAssetTypeCodeIsNotDisplayLabel(t *testing.T) {
	for _, at := range AllAssetTypes() {
		require.Len(t, at.Code(), 3)
		require.NotEqual(t, at.Code(), at.DisplayLabel())
	}
}

func TestSafeName(t *testing.T) {
	cfg := NewProjectConfig("id", "/assets", AssetTypeProp, "My Cool Asset")
	require.Equal(t, "My_Cool_Asset", cfg.SafeName())

	// Only spaces are replaced, nothing else is sanitized.
	cfg.AssetName = "weird-name.v2"
	require.Equal(t, "weird-name.v2", cfg.SafeName())
}

func TestNewProjectConfigDefaults(t *testing.T) {
	cfg := NewProjectConfig("id", "/assets", AssetTypeCharacter, "Hero")

	require.Equal(t, 1, cfg.Version)
	require.False(t, cfg.Generated)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProjectConfig)
	}{
		{"empty name", func(c *ProjectConfig) { c.AssetName = "  " }},
		{"empty root", func(c *ProjectConfig) { c.RootPath = "" }},
		{"bad type", func(c *ProjectConfig) { c.AssetType = "xyz" }},
		{"zero version", func(c *ProjectConfig) { c.Version = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewProjectConfig("id", "/assets", AssetTypeProp, "Crate")
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
