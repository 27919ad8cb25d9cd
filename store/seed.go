package store

import (
	_ "embed"
	"os"

	"school-activities/models"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Activities []models.Activity `yaml:"activities"`
}

// LoadSeed reads the activity seed from path, or the built-in seed when path is empty.
func LoadSeed(path string) ([]models.Activity, error) {
	if path == "" {
		return ParseSeed(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, errors.Wrapf(err, "seed file %s", path)
	}
	return seed, nil
}

func ParseSeed(data []byte) ([]models.Activity, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode seed")
	}
	if len(f.Activities) == 0 {
		return nil, errors.New("seed has no activities")
	}
	for i := range f.Activities {
		if f.Activities[i].Participants == nil {
			f.Activities[i].Participants = []string{}
		}
	}
	return f.Activities, nil
}
