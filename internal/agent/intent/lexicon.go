package intent

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// CompanyAlias maps a lowercase company name onto its ticker.
type CompanyAlias struct {
	Name   string `toml:"name"`
	Ticker string `toml:"ticker"`
}

// PeriodRule selects a history period when any keyword is present.
type PeriodRule struct {
	Period   string   `toml:"period"`
	Keywords []string `toml:"keywords"`
}

// Keywords holds the lowercase trigger words of each classification rule.
type Keywords struct {
	Compare         []string     `toml:"compare"`
	Historical      []string     `toml:"historical"`
	Periods         []PeriodRule `toml:"periods"`
	Statements      []string     `toml:"statements"`
	BalanceSheet    []string     `toml:"balance_sheet"`
	CashFlow        []string     `toml:"cash_flow"`
	Quarterly       []string     `toml:"quarterly"`
	News            []string     `toml:"news"`
	UpcomingEvents  []string     `toml:"upcoming_events"`
	Recommendations []string     `toml:"recommendations"`
	Overview        []string     `toml:"overview"`
}

// Lexicon is the data that drives ticker extraction and classification.
type Lexicon struct {
	StopWords []string       `toml:"stop_words"`
	Companies []CompanyAlias `toml:"companies"`
	Keywords  Keywords       `toml:"keywords"`
}

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		StopWords: []string{
			"WHAT", "WHEN", "WHERE", "WHICH", "WILL", "WITH", "FROM", "THAT", "THIS", "THEY",
			"HAVE", "BEEN", "WERE", "WOULD", "COULD", "SHOULD", "ABOUT", "STOCK", "PRICE",
			"MARKET", "TRADE", "INVEST", "ANALYSIS", "COMPANY",
			"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL", "CAN", "HAS", "HOW",
			"ITS", "NEW", "NOW", "OUR", "OUT", "WHO", "WHY", "DOES", "SOME", "GIVE", "TELL",
			"SHOW", "NEWS", "INFO", "DATA", "LAST", "NEXT", "YEAR", "OVER", "INTO", "THAN",
			"THEN", "ALSO", "JUST", "LIKE", "MUCH", "MORE", "MOST", "VERY", "GOOD", "BEST",
			"BAD", "HIGH", "LOW", "BUY", "SELL", "HOLD", "RATE", "RISK", "DOING", "GOING",
			"TODAY", "WORTH", "DOWN", "RIGHT", "THERE", "THEIR", "THESE", "THOSE", "AFTER",
			"AGAIN", "WHILE", "STILL", "YOUR", "ANY", "EACH", "TECH", "SAY", "DID", "WAS",
			"GET", "GOT", "LOOK", "THINK", "SHARE", "TOP",
			"VS", "ON", "IN", "OF", "TO", "IS", "IT", "AT", "BY", "OR", "AN", "AS", "BE",
			"DO", "IF", "ME", "MY", "NO", "SO", "UP", "US", "WE", "AM", "PM", "OK",
		},
		Companies: []CompanyAlias{
			{Name: "apple", Ticker: "AAPL"},
			{Name: "microsoft", Ticker: "MSFT"},
			{Name: "google", Ticker: "GOOGL"},
			{Name: "tesla", Ticker: "TSLA"},
			{Name: "amazon", Ticker: "AMZN"},
			{Name: "facebook", Ticker: "META"},
			{Name: "nvidia", Ticker: "NVDA"},
			{Name: "netflix", Ticker: "NFLX"},
			{Name: "spotify", Ticker: "SPOT"},
		},
		Keywords: Keywords{
			Compare:    []string{"compare", "vs", "versus", "against"},
			Historical: []string{"historical", "price history", "chart", "performance"},
			Periods: []PeriodRule{
				{Period: "6mo", Keywords: []string{"6 month", "6m"}},
				{Period: "3mo", Keywords: []string{"3 month", "3m"}},
				{Period: "2y", Keywords: []string{"2 year", "2y"}},
			},
			Statements:      []string{"financial", "statement", "income", "balance sheet", "cash flow"},
			BalanceSheet:    []string{"balance sheet"},
			CashFlow:        []string{"cash flow"},
			Quarterly:       []string{"quarterly", "q1", "q2"},
			News:            []string{"news", "latest", "recent", "announcement"},
			UpcomingEvents:  []string{"upcoming", "events", "earnings", "coming", "future", "calendar", "scheduled"},
			Recommendations: []string{"analyst", "recommendation", "upgrade", "downgrade", "rating"},
			Overview:        []string{"analysis", "overview", "info", "about"},
		},
	}
}

// LoadLexicon reads a TOML lexicon file. Lists missing from the file keep
// their built-in values.
func LoadLexicon(path string) (Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("%w: %v", ErrLexiconRead, err)
	}
	return ParseLexicon(raw)
}

// ParseLexicon decodes TOML lexicon data over DefaultLexicon.
func ParseLexicon(raw []byte) (Lexicon, error) {
	var file Lexicon
	if err := toml.Unmarshal(raw, &file); err != nil {
		return Lexicon{}, fmt.Errorf("%w: %v", ErrLexiconParse, err)
	}

	lex := DefaultLexicon()
	override(&lex.StopWords, file.StopWords)
	if len(file.Companies) > 0 {
		lex.Companies = file.Companies
	}
	if len(file.Keywords.Periods) > 0 {
		lex.Keywords.Periods = file.Keywords.Periods
	}
	kw, fkw := &lex.Keywords, file.Keywords
	override(&kw.Compare, fkw.Compare)
	override(&kw.Historical, fkw.Historical)
	override(&kw.Statements, fkw.Statements)
	override(&kw.BalanceSheet, fkw.BalanceSheet)
	override(&kw.CashFlow, fkw.CashFlow)
	override(&kw.Quarterly, fkw.Quarterly)
	override(&kw.News, fkw.News)
	override(&kw.UpcomingEvents, fkw.UpcomingEvents)
	override(&kw.Recommendations, fkw.Recommendations)
	override(&kw.Overview, fkw.Overview)

	if err := lex.Validate(); err != nil {
		return Lexicon{}, err
	}
	return lex, nil
}

func override(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

// Validate rejects lexicons the extractor cannot use.
func (l Lexicon) Validate() error {
	for i, c := range l.Companies {
		if c.Name == "" || c.Ticker == "" {
			return fmt.Errorf("%w: company %d needs name and ticker", ErrInvalidLexicon, i)
		}
	}
	for i, p := range l.Keywords.Periods {
		if p.Period == "" {
			return fmt.Errorf("%w: period rule %d has no period", ErrInvalidLexicon, i)
		}
	}
	return nil
}
