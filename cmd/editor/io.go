package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

// Path is where Save writes the level.
func (e *Editor) Path() string {
	return levels.DiskPath(levels.Clean(e.name))
}

// Save writes the level, tiles and entities, to the levels directory.
func (e *Editor) Save() error {
	e.EndStroke()
	lvl := e.world.Serialize()
	lvl.Name = e.name
	data, err := lvl.Marshal()
	if err != nil {
		return fmt.Errorf("editor: save %s: %w", e.name, err)
	}

	path := e.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("editor: save %s: %w", e.name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("editor: save %s: %w", e.name, err)
	}

	e.dirty = false
	e.setStatus("saved %s", path)
	log.Info("level saved", "path", path, "entities", lvl.Entities.Len())
	return nil
}

// Open replaces the edited level with name, read from disk or the
// embedded set. Unsaved changes are dropped.
func (e *Editor) Open(name string) error {
	lvl, err := obj.LoadLevel(name)
	if err != nil {
		return err
	}
	if e.play != nil {
		e.StopPlay()
	}
	if err := e.load(lvl); err != nil {
		return err
	}
	e.camX, e.camY = 0, 0
	e.setStatus("opened %s", lvl.Name)
	return nil
}

// Reload rereads the level from disk, keeping the camera where it is.
// Used when the file changes underneath the editor.
func (e *Editor) Reload() error {
	if e.dirty {
		e.setStatus("%s changed on disk; unsaved edits kept", e.name)
		return nil
	}
	lvl, err := obj.LoadLevel(e.name)
	if err != nil {
		return err
	}
	if err := e.load(lvl); err != nil {
		return err
	}
	e.setStatus("reloaded %s", e.name)
	return nil
}
