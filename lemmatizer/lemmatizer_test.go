package lemmatizer

import (
	"gdtools.org/lemmatizer/lexicon"
	"gdtools.org/lemmatizer/morphology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

const resourcesPath = "../resources/lemmatizer"

type lemmaCase struct {
	surface  string
	xpos     string
	expected string
}

func newTestLemmatizer(t *testing.T) *Lemmatizer {
	lex, err := lexicon.Load(resourcesPath)
	require.NoError(t, err)
	return New(lex)
}

func runCases(t *testing.T, lem *Lemmatizer, cases []lemmaCase) {
	t.Helper()
	for _, c := range cases {
		assert.Equal(t, c.expected, lem.Lemmatize(c.surface, c.xpos), "%s/%s", c.surface, c.xpos)
	}
}

func TestComparatives(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"àille", "Apc", "àlainn"},
		{"àirde", "Apc", "àrd"},
		{"aotruime", "Apc", "aotrom"},
		{"bige", "Apc", "beag"},
		{"caime", "Apc", "cam"},
		{"comasaiche", "Apc", "comasach"},
		{"cudromaiche", "Apc", "cudromach"},
		{"dealasaich", "Apc", "dealasach"},
		{"dhorcha", "Apc", "dorcha"},
		{"dlùithe", "Apc", "dlùth"},
		{"duirche", "Apc", "dorcha"},
		{"fhaide", "Apc", "fada"},
		{"fhaid'", "Apc", "fada"},
		{"fhaisge", "Apc", "faisg"},
		{"fhaisg'", "Apc", "faisg"},
		{"fhasa", "Apc", "furasta"},
		{"fhèarr", "Apc", "math"},
		{"fhearr", "Apc", "math"},
		{"fheàrr", "Apc", "math"},
		{"fuaire", "Apc", "fuar"},
		{"iomchaidhe", "Apc", "iomchaidh"},
		{"ìsle", "Apc", "ìosal"},
		{"làidire", "Apc", "làidir"},
		{"leatha", "Apc", "leathann"},
		{"luaithe", "Apc", "luath"},
		{"lugha", "Apc", "beag"},
		{"mheasaile", "Apc", "measail"},
		{"mhò", "Apc", "mòr"},
		{"mhotha", "Apc", "mòr"},
		{"mhuth'", "Apc", "mòr"},
		{"miona", "Apc", "mion"},
		{"miosa", "Apc", "dona"},
		{"nitheile", "Apc", "nitheil"},
		{"òige", "Apc", "òg"},
		{"righne", "Apc", "righinn"},
		{"righinne", "Apc", "righinn"},
		{"shaoire", "Apc", "saor"},
		{"shine", "Apc", "sean"},
		{"sine", "Apc", "sean"},
		{"taitniche", "Apc", "taitneach"},
		{"tràithe", "Apc", "tràth"},
		{"trice", "Apc", "tric"},
		{"fheàirrde", "Aps", "math"},
		{"mhisde", "Aps", "dona"},
	})
}

func TestAdjectives(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"mhòir", "Aq-smg", "mòr"},
		{"mòir", "Aq-pn", "mòir"},
		{"dheirg", "Aq-sfd", "dearg"},
		{"mhath", "Aq-sfn", "math"},
		{"Bheag", "Aq-sfn", "beag"},
		{"dorchad", "Av", "dorcha"},
		{"math", "Av", "math"},
	})
}

func TestAdverbsAndInterjections(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"chaoidh", "Rt", "chaoidh"},
		{"cho", "Rg", "cho"},
		{"fhathast", "Rt", "fhathast"},
		{"thall", "Rs", "thall"},
		{"thairis", "Rg", "thairis"},
		{"thairis", "Rs", "thairis"},
		{"sheo", "Rs", "seo"},
		{"shin", "Rs", "sin"},
		{"shiud", "Rs", "siud"},
		{"shuas", "Rs", "suas"},
		{"thric", "Rt", "tric"},
		{"'n", "I", "an"},
		{"bhuel", "I", "bhuel"},
		{"mhmm", "I", "mhmm"},
		{"shìorraidh", "I", "sìorraidh"},
		{"uh", "I", "uh"},
	})
}

func TestConjunctionsCopulaAndParticles(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"’s", "Cc", "is"},
		{"'is", "Cs", "is"},
		{"a's", "Cc", "agus"},
		{"'n", "Cc", "an"},
		{"agus", "Cc", "agus"},
		{"ach", "Cc", "ach"},
		{"an", "Wpdqa", "is"},
		{"B'", "Ws", "is"},
		{"b'", "Ws", "is"},
		{"bu", "Ws", "is"},
		{"cha", "Wp-in", "is"},
		{"chan", "Wp-in", "is"},
		{"gur", "Wpdia", "is"},
		{"'S", "Wp-i", "is"},
		{"'s", "Wp-i", "is"},
		{"is", "Wp-i", "is"},
		{"nach", "Wpdqn", "is"},
		{"'se", "Wp-i-3", "is"},
		{"as", "Wpr", "is"},
		{"b'", "Wp-s", "is"},
		{"gur", "Csw", "is"},
		{"d’", "Q--s", "do"},
		{"gun", "Qa", "gu"},
		{"chan", "Qn", "cha"},
		{"am", "Qa", "a"},
		{"bu", "Qa", "is"},
		{"b'", "Qa", "is"},
	})
}

func TestDeterminers(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"chuile", "Dq", "uile"},
		{"gach", "Dq", "gach"},
		{"'ic", "Up", "mac"},
		{"'sa", "Dd", "sa"},
		{"seo", "Dd", "seo"},
		{"na", "Tdpf", "an"},
		{"a'", "Tdsf", "an"},
		{"mo", "Dp1s", "mo"},
		{"a", "Dp3sf", "a"},
		{"'ur", "Dp2p", "ur"},
		{"an", "Dp3p", "an"},
		{"xx", "Dp9s", "xx"},
	})
}

func TestPrefixedWords(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"h-Alba", "Nt", "Alba"},
		{"H-Alba", "Nt", "Alba"},
		{"Albann", "Nt", "Alba"},
		{"dh’aon", "Mc", "aon"},
		{"dh'aon", "Mc", "aon"},
		{"n-eachdraidh", "Ncsfd", "eachdraidh"},
		{"t-seòrsa", "Ncsmd", "seòrsa"},
	})
}

func TestNumbersAndBorrowings(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"dhà", "Mc", "dà"},
		{"three", "Mc", "three"},
		{"mhedia", "Xfe", "media"},
		{"Glaschu", "Y", "Glaschu"},
	})
}

func TestPronouns(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"mis'", "Pp1s--e", "mi"},
		{"mise", "Pp1s--e", "mi"},
		{"tusa", "Pp2s--e", "thu"},
		{"iadsan", "Pp3p--e", "iad"},
		{"sib'", "Pp2p", "sibh"},
		{"e", "Pp3sm", "e"},
		{"chéile", "Px", "céile"},
		{"chèile", "Px", "cèile"},
		{"fhéin", "Px", "féin"},
		{"fhèin", "Px", "fèin"},
		{"fhìn", "Px", "fèin"},
	})
}

func TestPrepositions(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"'g", "Sa", "ag"},
		{"a'", "Sa", "ag"},
		{"ag", "Sa", "ag"},
		{"agam", "Sp", "aig"},
		{"agamsa", "Sp", "aig"},
		{"aige", "Sp", "aig"},
		{"aigese", "Sp", "aig"},
		{"orra", "Sp", "air"},
		{"leis", "Sp", "le"},
		{"dhuibhse", "Sp", "do"},
		{"innte", "Sp", "ann"},
		{"'sa", "Sp", "ann"},
		{"san", "Pr", "ann"},
		{"dhan", "Pr", "do"},
		{"rithe", "Sp", "ri"},
		{"dhìom", "Sp", "de"},
		{"chun", "Sp", "gu"},
		{"mu dheidhinn", "Sp", "mu dheidhinn"},
		{"bheulaibh", "Nf", "beul"},
		{"beulaibh", "Nf", "beul"},
		{"bhuam", "Sp", "bho"},
		{"bhon", "Pr", "bho"},
		{"fhad", "Sp", "fad"},
	})
}

func TestVerbs(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"bha", "V-s", "bi"},
		{"tha", "V-p", "bi"},
		{"chaidh", "V-s", "rach"},
		{"chuir", "V-s", "cuir"},
		{"sgrìobhadh", "V-s0", "sgrìobh"},
		{"dhùineadh", "V-s0", "dùin"},
		{"buailear", "V-p0", "buail"},
		{"cuirear", "V-f0", "cuir"},
		{"thogadh", "V-h", "tog"},
		{"cuiridh", "V-f", "cuir"},
		{"togaidh", "V-f", "tog"},
		{"òlaibh", "Vm-2p", "òl"},
		{"togamaid", "Vm-1p", "tog"},
		{"tilleamaid", "Vm-1p", "till"},
		{"bhuaileas", "V-f--r", "buail"},
		{"ghabhas", "V-f--r", "gabh"},
		{"dh’fhalbh", "V-s", "falbh"},
		{"nì", "V-f", "dèan"},
	})
}

func TestNouns(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"bhràithrean-sa", "Ncpmne", "bràthair"},
		{"fhear-sa", "Ncsmge*", "fear"},
		{"fhear-sa", "Ncsmge", "fear"},
		{"taighean", "Ncpmn", "taigh"},
		{"Taighean", "Ncpmn", "taigh"},
		{"cnocan", "Ncpmn", "cnoc"},
		{"iasgairean", "Ncpmn", "iasgair"},
		{"oidhcheannan", "Ncpfn", "oidhche"},
		{"bodaich", "Ncpmn", "bodach"},
		{"dùthchannan", "Ncpfn", "dùthaich"},
		{"caorach", "Ncpfg", "caora"},
		{"rìghrean", "Ncpmn", "rìgh"},
		{"companaidhean", "Ncpfn", "companaidh"},
		{"eilean", "Ncpmn", "eilean"},
		{"mnathan", "Ncpfn", "bean"},
		{"balaich", "Ncsmg", "balach"},
		{"creige", "Ncsfd", "creag"},
		{"caileig", "Ncsfd", "caileag"},
		{"dorais", "Ncsmg", "doras"},
		{"samhraidh", "Ncsmg", "samhradh"},
		{"daimh", "Ncsmg", "damh"},
		{"coilich", "Ncsmg", "coileach"},
		{"luchd-obrach", "Ncpmn", "neach-obrach"},
	})
}

func TestProperNouns(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"Sheumais", "Nn-mg", "Seumas"},
		{"Dhòmhnaill", "Nn-mg", "Dòmhnall"},
		{"Chaluim", "Nn-mg", "Calum"},
		{"Mhic", "Nn-mg", "Mac"},
		{"Iain", "Nn-mv", "Iain"},
		{"lain", "Nn-mn", "Iain"},
		{"Shaw", "Nn-mn", "Shaw"},
		{"Dougie", "Nn-mg", "Dougie"},
		{"O'", "Nn-mn", "O'"},
		{"a'", "Nn-fn", "an"},
	})
}

func TestVerbalNouns(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"dol", "Nv", "rach"},
		{"dhol", "Nv", "rach"},
		{"ràdh", "Nv", "abair"},
		{"bruidhinn", "Nv", "bruidhinn"},
		{"togail", "Nv", "tog"},
		{"dèanamh", "Nv", "dèan"},
		{"cluinntinn", "Nv", "cluinn"},
		{"tòiseachadh", "Nv", "tòisich"},
		{"ceannachadh", "Nv", "ceannaich"},
		{"coiseachd", "Nv", "coisich"},
		{"tachairt", "Nv", "tachair"},
		{"sgrìobhadh", "Nv", "sgrìobh"},
		{"creidsinn", "Nv", "creid"},
		{"faicinn", "Nv", "faic"},
		{"leughadh", "Nv", "leugh"},
		{"ithe", "Nv", "ith"},
	})
}

func TestUntaggedAndUnknownTags(t *testing.T) {
	runCases(t, newTestLemmatizer(t), []lemmaCase{
		{"Bige", "", "beag"},
		{"fear", "", "fear"},
		{"h-Alba", "", "alba"},
		{"Bige", "ncs", "bige"},
		{"Foo", "Z", "foo"},
		{"Foo", "Fb", "foo"},
	})
}

func TestExceptionLookupPrecedence(t *testing.T) {
	lex, err := lexicon.Load(resourcesPath)
	require.NoError(t, err)
	lem := New(lex)

	for surface, lemma := range lex.Lemmata() {
		assert.Equal(t, lemma, lem.Lemmatize(surface, ""), surface)
	}

	unchanged := func(s string) string { return s }
	// each handler rewrites the surface in these ways before the lookup
	preLookup := map[string]func(string) string{
		"Apc": unchanged,
		"Rs":  unchanged,
		"Dq":  unchanged,
		"Aq-smn": func(s string) string {
			return morphology.RemoveFinalApostrophe(morphology.Delenite(s))
		},
		"Ncsmn": func(s string) string {
			return morphology.RemoveFinalApostrophe(morphology.Delenite(strings.TrimPrefix(s, "'")))
		},
		"V-s": func(s string) string {
			if s == "nì" || strings.HasSuffix(s, "'") && utf8.RuneCountInString(s) > 3 {
				return ""
			}
			return s
		},
	}
	for tag, rewrite := range preLookup {
		checked := 0
		for surface, lemma := range lex.Lemmata() {
			if rewrite(Normalize(surface)) != surface {
				continue
			}
			checked++
			assert.Equal(t, lemma, lem.Lemmatize(surface, tag), "%s/%s", surface, tag)
		}
		assert.NotZero(t, checked, tag)
	}
}

func TestNotIdempotent(t *testing.T) {
	lem := newTestLemmatizer(t)

	once := lem.Lemmatize("làidire", "Apc")
	assert.Equal(t, "làidir", once)
	// a lemma is not a fixed point of its own tag's rules
	assert.Equal(t, "làidear", lem.Lemmatize(once, "Apc"))
}

func TestDispatchNeverPanics(t *testing.T) {
	lem := newTestLemmatizer(t)
	tags := []string{
		"A", "Ap", "Aq", "Av", "C", "Cc", "D", "Dp", "Dq", "Dd", "I", "M", "Mc",
		"N", "Nc", "Ncp", "Nn", "Nt", "Nv", "Nf", "P", "Pp", "Px", "Q", "Qa",
		"R", "S", "Sa", "T", "Td", "U", "Up", "V", "Vm", "W", "X", "Xfe", "Y",
	}
	surfaces := []string{"", "a", "'", "a'", "bh", "fhear-sa", "Sheumais"}
	for _, tag := range tags {
		for _, surface := range surfaces {
			first := lem.Lemmatize(surface, tag)
			assert.Equal(t, first, lem.Lemmatize(surface, tag), "%q/%s", surface, tag)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	lem := newTestLemmatizer(t)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lem.Lemmatize("bhràithrean-sa", "Ncpmne")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "bràthair", r)
	}
}
