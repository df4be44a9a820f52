package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignlens/internal/campaign"
)

func testConfig() *campaign.Config {
	return &campaign.Config{
		CampaignName: "Alpina - JojoMochis",
		Product:      "JojoMochis",
		Version:      "1.0",
		Categories: []string{
			catAvailability,
			catPrice,
			catCollection,
			catInfoRequest,
			catPositive,
			catCharacters,
			catComparison,
			catProblems,
			catContests,
			catCommunityMgr,
			catGiftRequests,
			catProductTraits,
			catNoise,
			campaign.CategoryOther,
		},
	}
}

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	clf, err := New(testConfig())
	require.NoError(t, err)
	return clf
}

func TestNewRejectsMissingRuleCategory(t *testing.T) {
	cfg := testConfig()
	cfg.Categories = []string{catPrice, campaign.CategoryOther}

	_, err := New(cfg)
	require.Error(t, err)
}

func TestClassifyIsTotal(t *testing.T) {
	clf := newTestClassifier(t)
	cfg := testConfig()

	inputs := []string{
		"",
		" ",
		"¿Dónde puedo comprar los JojoMochis?",
		"jajaja",
		"★",
		"una frase cualquiera de tamaño razonable",
		"12345",
		"❤️❤️❤️",
	}
	for _, in := range inputs {
		topic := clf.Classify(in)
		assert.True(t, cfg.HasCategory(topic), "input %q got unknown topic %q", in, topic)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	clf := newTestClassifier(t)

	in := "cuánto vale la colección completa"
	assert.Equal(t, clf.Classify(in), clf.Classify(in))
}

func TestClassifyPriorityOrder(t *testing.T) {
	clf := newTestClassifier(t)

	// Matches both the price rule and the character rule; price is earlier
	// in the table and must win.
	assert.Equal(t, catPrice, clf.Classify("cuánto vale el de lucerita"))
}

func TestClassifyAvailability(t *testing.T) {
	clf := newTestClassifier(t)

	assert.Equal(t, catAvailability, clf.Classify("¿Dónde puedo comprar los JojoMochis?"))
}

func TestClassifyNoiseFallbacks(t *testing.T) {
	clf := newTestClassifier(t)

	// Filler pattern with at most three tokens.
	assert.Equal(t, catNoise, clf.Classify("jajaja"))
	// Exact short acknowledgment token.
	assert.Equal(t, catNoise, clf.Classify("ok"))
	// Shorter than ten runes with no other match.
	assert.Equal(t, catNoise, clf.Classify("x"))
	assert.Equal(t, catNoise, clf.Classify(""))
}

func TestClassifyFillerNeedsFewTokens(t *testing.T) {
	clf := newTestClassifier(t)

	// Laughter plus enough extra words escapes the filler rule and, with no
	// other pattern hit, lands in the catch-all.
	topic := clf.Classify("jajaja qué buenas tardes para todo el equipo")
	assert.Equal(t, campaign.CategoryOther, topic)
}

func TestClassifyDefaultsToOther(t *testing.T) {
	clf := newTestClassifier(t)

	assert.Equal(t, campaign.CategoryOther, clf.Classify("buenas tardes para todo el equipo por acá"))
}

func TestCategoriesOrder(t *testing.T) {
	clf := newTestClassifier(t)

	cats := clf.Categories()
	require.Len(t, cats, len(ruleTable))
	assert.Equal(t, catAvailability, cats[0])
	assert.Equal(t, catNoise, cats[len(cats)-1])
}
