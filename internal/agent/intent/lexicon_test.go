package intent_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financial-agent/internal/agent/intent"
)

func TestParseLexicon_OverridesOnlyPresentLists(t *testing.T) {
	raw := []byte(`
stop_words = ["FOO"]

[[companies]]
name = "intel"
ticker = "INTC"

[keywords]
news = ["headline"]
`)
	lex, err := intent.ParseLexicon(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"FOO"}, lex.StopWords)
	assert.Equal(t, []intent.CompanyAlias{{Name: "intel", Ticker: "INTC"}}, lex.Companies)
	assert.Equal(t, []string{"headline"}, lex.Keywords.News)
	assert.Equal(t, intent.DefaultLexicon().Keywords.Compare, lex.Keywords.Compare)
}

func TestParseLexicon_Invalid(t *testing.T) {
	_, err := intent.ParseLexicon([]byte(`stop_words = [`))
	assert.ErrorIs(t, err, intent.ErrLexiconParse)

	_, err = intent.ParseLexicon([]byte("[[companies]]\nname = \"intel\"\n"))
	assert.ErrorIs(t, err, intent.ErrInvalidLexicon)
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keywords]\ncompare = [\"stack up\"]\n"), 0o600))

	lex, err := intent.LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"stack up"}, lex.Keywords.Compare)

	_, err = intent.LoadLexicon(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, intent.ErrLexiconRead)
}
