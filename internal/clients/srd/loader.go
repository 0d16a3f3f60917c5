// Package srd reads the monster and spell lists from local JSON files
package srd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
)

type Config struct {
	MonstersPath string
	SpellsPath   string
}

// Loader is a catalog.Source backed by SRD JSON files. Files are read on
// every call so edits show up without a restart.
type Loader struct {
	monstersPath string
	spellsPath   string
}

func New(cfg *Config) (*Loader, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("srd config is required")
	}
	if cfg.MonstersPath == "" {
		return nil, dnderr.InvalidArgument("monsters path is required")
	}
	if cfg.SpellsPath == "" {
		return nil, dnderr.InvalidArgument("spells path is required")
	}

	return &Loader{
		monstersPath: cfg.MonstersPath,
		spellsPath:   cfg.SpellsPath,
	}, nil
}

func (l *Loader) Monsters(ctx context.Context) ([]catalog.MonsterRecord, error) {
	var monsters []catalog.MonsterRecord
	if err := readJSON(ctx, l.monstersPath, &monsters); err != nil {
		return nil, err
	}
	return monsters, nil
}

func (l *Loader) Spells(ctx context.Context) ([]catalog.SpellRecord, error) {
	var spells []catalog.SpellRecord
	if err := readJSON(ctx, l.spellsPath, &spells); err != nil {
		return nil, err
	}
	return spells, nil
}

func readJSON(ctx context.Context, path string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dnderr.WrapWithCode(err, dnderr.CodeNotFound, "catalog file not found").
				WithMeta("path", path)
		}
		return dnderr.Wrapf(err, "failed to read %s", path)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "catalog file is not valid JSON").
			WithMeta("path", path)
	}

	return nil
}
