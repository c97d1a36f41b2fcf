package matcher

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/branch-locator/internal/normalizer"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/xrash/smetrics"
	"go.uber.org/zap"
)

// Strategy how a name matched a query
type Strategy string

const (
	StrategyNone   Strategy = ""
	StrategyExact  Strategy = "exact"
	StrategyPrefix Strategy = "prefix"
	StrategyInfix  Strategy = "infix"
	StrategyASCII  Strategy = "ascii"
	StrategyFuzzy  Strategy = "fuzzy"
)

const (
	defaultCacheSize = 1024
	defaultMinScore  = 0.8
)

// Match score of one name against a query
type Match struct {
	Score    float64
	Strategy Strategy
}

type folded struct {
	text   string
	ascii  string
	tokens []string // of ascii
}

// Matcher filters option lists by what the user typed. Folded forms of names
// are kept in an LRU cache since the same lists are filtered on every key.
type Matcher struct {
	cache    *lru.Cache[string, folded]
	rules    *normalizer.Rules
	minScore float64
	logger   *zap.Logger
}

// New creates a Matcher. Non-positive arguments select the defaults.
func New(cacheSize int, minScore float64, logger *zap.Logger) (*Matcher, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	if minScore <= 0 || minScore > 1 {
		minScore = defaultMinScore
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.New[string, folded](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create fold cache: %w", err)
	}
	rules, err := normalizer.LoadRules()
	if err != nil {
		return nil, err
	}
	return &Matcher{cache: cache, rules: rules, minScore: minScore, logger: logger}, nil
}

func (m *Matcher) fold(s string) folded {
	if f, ok := m.cache.Get(s); ok {
		return f
	}
	text := normalizer.Fold(s)
	f := folded{
		text:  text,
		ascii: normalizer.ASCII(s),
	}
	f.tokens = strings.Fields(f.ascii)
	m.cache.Add(s, f)
	return f
}

// Score compares query against name, trying every variant of the query from
// the alias rules. An empty query matches everything.
func (m *Matcher) Score(query, name string) Match {
	variants := m.rules.Variants(query)
	if len(variants) == 0 {
		return Match{Score: 1, Strategy: StrategyExact}
	}
	n := m.fold(name)

	var best Match
	for _, q := range variants {
		if got := m.score(q, n); got.Score > best.Score {
			best = got
		}
	}
	return best
}

func (m *Matcher) score(q string, n folded) Match {
	switch {
	case n.text == q:
		return Match{Score: 1, Strategy: StrategyExact}
	case strings.HasPrefix(n.text, q):
		return Match{Score: 0.95, Strategy: StrategyPrefix}
	case strings.Contains(n.text, q):
		return Match{Score: 0.9, Strategy: StrategyInfix}
	}

	if normalizer.IsASCII(q) && !normalizer.IsASCII(n.text) && strings.Contains(n.ascii, q) {
		return Match{Score: 0.85, Strategy: StrategyASCII}
	}

	if best := fuzzy(normalizer.ASCII(q), n.tokens); best >= m.minScore {
		return Match{Score: best, Strategy: StrategyFuzzy}
	}
	return Match{}
}

// Matches reports whether name passes the filter for query
func (m *Matcher) Matches(query, name string) bool {
	return m.Score(query, name).Strategy != StrategyNone
}

// fuzzy best Jaro-Winkler or length-normalised Levenshtein similarity of q
// against any single token. Both sides are transliterated since Jaro-Winkler
// compares bytes. Queries shorter than three letters never match fuzzily.
func fuzzy(q string, tokens []string) float64 {
	if utf8.RuneCountInString(q) < 3 {
		return 0
	}
	best := 0.0
	for _, tok := range tokens {
		if jw := smetrics.JaroWinkler(q, tok, 0.7, 4); jw > best {
			best = jw
		}
		dist := levenshtein.ComputeDistance(q, tok)
		maxLen := math.Max(float64(utf8.RuneCountInString(q)), float64(utf8.RuneCountInString(tok)))
		if lev := 1 - float64(dist)/maxLen; lev > best {
			best = lev
		}
	}
	return best
}

// Filter keeps the items whose name matches query, in their original order
func Filter[T any](m *Matcher, query string, items []T, name func(T) string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if m.Matches(query, name(it)) {
			out = append(out, it)
		}
	}
	m.logger.Debug("Filtered options",
		zap.String("query", query),
		zap.Int("total", len(items)),
		zap.Int("kept", len(out)))
	return out
}
