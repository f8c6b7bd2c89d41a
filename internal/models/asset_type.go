package models

import (
	"fmt"
	"strings"
)

// AssetType identifies the kind of asset a project manages.
//
// The value is the short type code that prefixes every generated folder
// and file name, never the display label.
type AssetType string

const (
	AssetTypeProp      AssetType = "prp"
	AssetTypeCharacter AssetType = "chr"
	AssetTypeResource  AssetType = "res"
)

// AllAssetTypes lists the supported asset types in display order.
func AllAssetTypes() []AssetType {
	return []AssetType{AssetTypeProp, AssetTypeCharacter, AssetTypeResource}
}

// ParseAssetType parses an asset type from its code or display label.
func ParseAssetType(s string) (AssetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prp", "prop":
		return AssetTypeProp, nil
	case "chr", "character":
		return AssetTypeCharacter, nil
	case "res", "resource":
		return AssetTypeResource, nil
	default:
		return "", fmt.Errorf("invalid asset type: %s (expected prop, character, or resource)", s)
	}
}

// Code returns the short folder/file prefix for the type.
func (t AssetType) Code() string {
	return string(t)
}

// DisplayLabel returns the human-readable label shown in dialogs.
func (t AssetType) DisplayLabel() string {
	switch t {
	case AssetTypeProp:
		return "Prop (prp)"
	case AssetTypeCharacter:
		return "Character (chr)"
	case AssetTypeResource:
		return "Resource (res)"
	default:
		return string(t)
	}
}

// Valid reports whether the type is one of the supported codes.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeProp, AssetTypeCharacter, AssetTypeResource:
		return true
	}
	return false
}

// State tags a saved document's lifecycle stage.
type State string

const (
	// StateWIP marks a working-in-progress save.
	StateWIP State = "wip"

	// StateFin marks a published/final copy.
	StateFin State = "fin"
)
