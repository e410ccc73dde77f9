package intent

import (
	"regexp"
	"strings"

	"financial-agent/internal/agent"
)

// Extractor finds ticker symbols in free text.
type Extractor struct {
	patterns  []*regexp.Regexp
	rejected  map[string]struct{}
	companies []CompanyAlias
}

var _ agent.TickerExtractor = (*Extractor)(nil)

// NewExtractor builds an Extractor from lex. Company names are rejected as
// symbols so that "Tesla" resolves through the alias table instead.
func NewExtractor(lex Lexicon) *Extractor {
	rejected := make(map[string]struct{}, len(lex.StopWords)+len(lex.Companies))
	for _, w := range lex.StopWords {
		rejected[strings.ToUpper(w)] = struct{}{}
	}
	companies := make([]CompanyAlias, 0, len(lex.Companies))
	for _, c := range lex.Companies {
		rejected[strings.ToUpper(c.Name)] = struct{}{}
		companies = append(companies, CompanyAlias{
			Name:   strings.ToLower(c.Name),
			Ticker: strings.ToUpper(c.Ticker),
		})
	}

	return &Extractor{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(patternDollar),
			regexp.MustCompile(patternSymbolNoun),
			regexp.MustCompile(patternNounSymbol),
			regexp.MustCompile(patternPair),
			regexp.MustCompile(patternBare),
		},
		rejected:  rejected,
		companies: companies,
	}
}

// Extract returns unique tickers in match order. The first one is the
// primary ticker. When no pattern matches, the company alias table is
// consulted in its declared order.
func (e *Extractor) Extract(text string) []string {
	var (
		out  []string
		seen = make(map[string]struct{})
	)
	add := func(candidate string) {
		if len(candidate) < minTickerLen {
			return
		}
		if _, ok := e.rejected[candidate]; ok {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	upper := strings.ToUpper(text)
	for _, re := range e.patterns {
		for _, m := range re.FindAllStringSubmatch(upper, -1) {
			for _, g := range m[1:] {
				add(g)
			}
		}
	}
	if len(out) > 0 {
		return out
	}

	lower := strings.ToLower(text)
	for _, c := range e.companies {
		if !strings.Contains(lower, c.Name) {
			continue
		}
		if _, ok := seen[c.Ticker]; ok {
			continue
		}
		seen[c.Ticker] = struct{}{}
		out = append(out, c.Ticker)
	}
	return out
}
