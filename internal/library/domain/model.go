// Package domain holds the editing-resources catalog: sound effects,
// fonts, and the content-idea shelves.
package domain

import "errors"

// ErrNotFound is returned when a sound effect id does not exist.
var ErrNotFound = errors.New("sound effect not found")

// Tier marks whether a catalog item needs the paid plan.
type Tier string

const (
	TierFree Tier = "Free"
	TierPro  Tier = "Pro"
)

// SoundEffect is one entry in the SFX catalog.
type SoundEffect struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Size     string `json:"size"`
	Category string `json:"category"`
	Tier     Tier   `json:"tier"`
	Favorite bool   `json:"favorite"`
}

// Font is one placeholder font tile.
type Font struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IdeaShelf is one content-inspiration category with its placeholder
// video slots.
type IdeaShelf struct {
	Category string   `json:"category"`
	Videos   []string `json:"videos"`
}
