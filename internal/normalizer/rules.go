package normalizer

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/aliases.yaml
var aliasesYAML []byte

// minAliasPrefix shortest Latin query that is expanded through the alias table
const minAliasPrefix = 3

// Rules query expansion loaded from the embedded alias table
type Rules struct {
	EnglishArabic map[string]string `yaml:"english_arabic"`
	NoisePrefixes []string          `yaml:"noise_prefixes"`

	keys []string
}

// LoadRules decodes the embedded alias table
func LoadRules() (*Rules, error) {
	r := &Rules{}
	if err := yaml.Unmarshal(aliasesYAML, r); err != nil {
		return nil, fmt.Errorf("decode alias rules: %w", err)
	}
	for k := range r.EnglishArabic {
		r.keys = append(r.keys, k)
	}
	slices.Sort(r.keys)
	for i, p := range r.NoisePrefixes {
		r.NoisePrefixes[i] = Fold(p)
	}
	return r, nil
}

// Variants folded forms of query worth matching: the query without noise
// prefixes and, for Latin input, the Arabic names whose Latin spelling starts
// with it
func (r *Rules) Variants(query string) []string {
	q := r.stripNoise(Fold(query))
	if q == "" {
		return nil
	}
	out := []string{q}
	if !IsASCII(q) || len(q) < minAliasPrefix {
		return out
	}
	for _, en := range r.keys {
		if !strings.HasPrefix(en, q) {
			continue
		}
		if ar := Fold(r.EnglishArabic[en]); !slices.Contains(out, ar) {
			out = append(out, ar)
		}
	}
	return out
}

func (r *Rules) stripNoise(q string) string {
	for _, p := range r.NoisePrefixes {
		if rest, ok := strings.CutPrefix(q, p+" "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return q
}
