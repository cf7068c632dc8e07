package lemmatizer

import "gdtools.org/lemmatizer/morphology"

var pluralEndings = morphology.NewRuleSet(
	"dhnichean", "dhne",
	"eachan", "e",
	"achan", "a",
	"aich", "ach",
	"aidhean", "adh",
	"aichean", "ach",
	"ichean", "iche",
	"eannan", "e",
	"thchannan", "thaich",
	"annan", "a",
	"thran", "thar",
	"oill", "all",
	"uill", "all",
	"ait", "at",
	"caorach", "caora",
	"rìghrean", "rìgh",
	"nntean", "nn",
	"ean", "",
	"rsan", "ras",
	"an", "",
)

var feminineObliqueEndings = morphology.NewRuleSet(
	"eig", "eag",
	"eige", "eag",
	"ire", "ir",
	"the", "th",
	"rce", "rc",
)

var masculineObliqueEndings = morphology.NewRuleSet(
	"aich", "ach",
	"aidh", "adh",
	"ail", "al",
	"ais", "as",
	"uis", "us",
	"aimh", "amh",
)

// eachdainn can never fire because inn precedes it; kept to preserve the
// table as curated.
var verbalNounEndings = morphology.NewRuleSet(
	"sinn", "",
	"tail", "",
	"ail", "",
	"eil", "",
	"eal", "",
	"aich", "",
	"tich", "teachd",
	"ich", "",
	"tainn", "",
	"tinn", "",
	"eamh", "",
	"amh", "",
	"eamhainn", "",
	"mhainn", "",
	"inn", "",
	"eachdainn", "ich",
	"eachadh", "ich",
	"achadh", "aich",
	"airt", "air",
	"gladh", "gail",
	"eadh", "",
	"-adh", "",
	"adh", "",
	"e", "",
	"eachd", "ich",
	"achd", "aich",
)

var relativeVerbEndings = morphology.NewRuleSet(
	"eas", "",
	"as", "",
)

var verbEndings = morphology.NewPatternRules(
	"Vm-1p", `e?amaid$`,
	"Vm-2p", `a?ibh$`,
	"V-s0", `e?adh$`,
	"V-p0", `e?a[rs]$`,
	"V-f0", `e?ar$`,
	"V-h1p", `omaid$`,
	"V-h", `e?adh$`,
	"Vm-3", `e?adh$`,
	"V-f", `a?(idh|s)$`,
)
