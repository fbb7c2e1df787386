package datasets

import (
	"fmt"

	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
)

// Species holds the input parameters for one bycatch species. Delta is the
// population decline rate (negative means declining) and Fe the bycatch
// mortality rate. DeltaSD and FeSD are optional standard deviations used when
// the run draws parameters from distributions; NaN means no uncertainty was
// supplied for that parameter. Immutable once loaded.
type Species struct {
	Name       string
	Clade      string
	Delta      float64
	Fe         float64
	DeltaSD    float64
	FeSD       float64
	Silhouette string
}

// speciesColumns are the columns every species table must carry.
var speciesColumns = []string{"species", "clade", "delta", "fe"}

// LoadSpecies reads the bycatch species table at path. Species names must be
// unique; delta and fe must be present for every row.
func LoadSpecies(path string) ([]Species, error) {
	t, err := readTable(path, speciesColumns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(t.rows))
	species := make([]Species, 0, len(t.rows))
	for n, row := range t.rows {
		sp := Species{
			Name:       t.field(row, "species"),
			Clade:      t.field(row, "clade"),
			Silhouette: t.field(row, "silhouette"),
		}
		if sp.Name == "" {
			return nil, fmt.Errorf("%s: row %d has an empty species name", path, n+2)
		}
		if seen[sp.Name] {
			return nil, fmt.Errorf("%s: duplicate species %q", path, sp.Name)
		}
		seen[sp.Name] = true

		if sp.Delta, err = t.numeric(row, "delta"); err != nil {
			return nil, err
		}
		if sp.Fe, err = t.numeric(row, "fe"); err != nil {
			return nil, err
		}
		if !mathutil.Defined(sp.Delta) || !mathutil.Defined(sp.Fe) {
			return nil, fmt.Errorf("%s: species %q is missing delta or fe", path, sp.Name)
		}
		if sp.DeltaSD, err = t.numeric(row, "delta_sd"); err != nil {
			return nil, err
		}
		if sp.FeSD, err = t.numeric(row, "fe_sd"); err != nil {
			return nil, err
		}

		species = append(species, sp)
	}

	return species, nil
}
