package mat

import (
	"strings"

	"github.com/jglaser/xssp/internal/mas"
)

// Family bundles four matrices of one series, ordered from most to least
// divergent, together with the distance cutoffs that pick between them.
// Distant pairs score against the shallow end of the series, close pairs
// against the deep end.
type Family struct {
	name     string
	cutoffs  [4]float32
	plain    [4]*Matrix
	positive [4]*Matrix
}

var families = map[string]struct {
	members [4]string
	cutoffs [4]float32
}{
	"BLOSUM": {
		members: [4]string{"BLOSUM30", "BLOSUM45", "BLOSUM62", "BLOSUM80"},
		cutoffs: [4]float32{0.8, 0.6, 0.4, 0},
	},
}

// LoadFamily returns the named matrix family. The name is matched case
// insensitively. A single matrix name yields a family with that matrix
// as its only member; a name that is neither is a ConfigError.
func LoadFamily(name string) (*Family, error) {
	def, ok := families[strings.ToUpper(name)]
	if !ok {
		m, err := Load(strings.ToUpper(name))
		if err != nil {
			return nil, mas.Configf("unknown substitution matrix or family '%s'", name)
		}

		f := &Family{name: m.Name()}
		for i := range f.plain {
			f.plain[i] = m
			f.positive[i] = m.Positive()
		}
		return f, nil
	}

	f := &Family{name: strings.ToUpper(name), cutoffs: def.cutoffs}
	for i, member := range def.members {
		m, err := Load(member)
		if err != nil {
			return nil, err
		}
		f.plain[i] = m
		f.positive[i] = m.Positive()
	}
	return f, nil
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Select picks the member matrix for a pairwise distance, optionally the
// variant shifted to non negative scores.
func (f *Family) Select(distance float32, positive bool) *Matrix {
	ix := 0
	for distance < f.cutoffs[ix] && ix < 3 {
		ix++
	}
	if positive {
		return f.positive[ix]
	}
	return f.plain[ix]
}
