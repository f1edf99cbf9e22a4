package main

import (
	"io"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/metamagic/internal/domain/action"
	"github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/formula"
	"github.com/KirkDiggler/metamagic/internal/errors"
)

// castFixture is the YAML shape accepted by apply
type castFixture struct {
	Action action.Action `yaml:"action"`
	// DC is a dice-free formula over roll data, e.g. "10 + @sl + @ablMod"
	DC string `yaml:"dc"`
}

func loadCastFile(path string) (*action.Action, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open cast file %s", path)
	}
	defer f.Close()
	return decodeCast(f)
}

func decodeCast(r io.Reader) (*action.Action, error) {
	var fixture castFixture
	if err := yaml.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode cast")
	}

	a := &fixture.Action
	if a.Item.Name == "" {
		return nil, errors.InvalidArgument("cast file needs action.item.name")
	}

	if fixture.DC != "" {
		if _, err := formula.Evaluate(fixture.DC, a.RollData.Values()); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid dc formula")
		}
		src := fixture.DC
		a.DC = func(rd *action.RollData) int {
			v, err := formula.Evaluate(src, rd.Values())
			if err != nil {
				log.Printf("Failed to evaluate DC %q: %v", src, err)
				return 0
			}
			return int(math.Floor(v))
		}
	}
	return a, nil
}
