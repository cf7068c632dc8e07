package types

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path"
	"sort"
	"testing"
)

func TestLoadConfigurations(t *testing.T) {
	cfgs, err := LoadConfigurations("../configs")
	require.NoError(t, err)
	sort.Slice(cfgs, func(i, j int) bool { return cfgs[i].Name < cfgs[j].Name })

	require.Len(t, cfgs, 2)
	assert.Equal(t, "goc", cfgs[0].Name)
	assert.True(t, cfgs[0].CheckFeature(GOCFeature))
	assert.False(t, cfgs[0].CheckFeature(SubcatFeature))
	assert.Equal(t, "treebank", cfgs[1].Name)
	assert.Equal(t, TreebankPipeline, cfgs[1].Pipeline)
	assert.True(t, cfgs[1].Params.OverwriteLemma)
	assert.True(t, cfgs[1].CheckFeature(FeatsFeature))
}

func TestLoadConfigurationsSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"good.yaml":   "pipeline: treebank\nfeatures: [lemma]\n",
		"wrong.yaml":  "pipeline: tagger\n",
		"broken.yaml": "pipeline: [\n",
		"notes.txt":   "pipeline: treebank\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(path.Join(dir, name), []byte(content), 0o644))
	}

	cfgs, err := LoadConfigurations(dir)
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	assert.Equal(t, "good", cfgs[0].Name)

	_, err = LoadConfiguration(path.Join(dir, "wrong.yaml"))
	assert.ErrorIs(t, err, ErrPipelineType)

	_, err = LoadConfigurations(path.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestTokenIsWord(t *testing.T) {
	assert.True(t, (&Token{ID: "12"}).IsWord())
	assert.False(t, (&Token{ID: "1-2"}).IsWord())
	assert.False(t, (&Token{ID: "1.1"}).IsWord())
	assert.False(t, (&Token{}).IsWord())
}

func TestTokenAddMisc(t *testing.T) {
	token := Token{Misc: "_"}
	token.AddMisc("Subcat", "TRANS")
	token.AddMisc("OrigForm", "tigh")
	assert.Equal(t, "Subcat=TRANS|OrigForm=tigh", token.Misc)
}

func TestSentenceCloneDoesNotShareTokens(t *testing.T) {
	lemma := "bi"
	sent := Sentence{Index: 3, Comments: []string{"# sent_id = 3"}, Tokens: []*Token{{ID: "1", Form: "bha", Lemma: &lemma}}}

	clone := sent.Clone()
	clone.Tokens[0].Form = "tha"
	clone.Comments[0] = "# changed"

	assert.Equal(t, "bha", sent.Tokens[0].Form)
	assert.Equal(t, "# sent_id = 3", sent.Comments[0])
	assert.Equal(t, 3, clone.Index)
	assert.Equal(t, "bi", clone.Tokens[0].GetLemma())
}
