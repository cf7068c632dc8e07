package lexicon

// Closed classes small enough to live in code.

var pronounVariants = map[string][]string{
	"mi":   {"mise"},
	"thu":  {"tu", "tusa", "thusa"},
	"e":    {"esan"},
	"i":    {"ise"},
	"sinn": {"sinne"},
	"sibh": {"sibhse"},
	"iad":  {"iadsan"},
	"fèin": {"fhìn"},
}

var possessives = map[string]string{
	"Dp1s": "mo",
	"Dp2s": "do",
	"Dp3s": "a",
	"Dp1p": "ar",
	"Dp2p": "ur",
	"Dp3p": "an",
}
