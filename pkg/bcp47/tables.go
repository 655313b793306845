package bcp47

// Preferred-value tables extracted from the IANA Language Subtag
// Registry. Only entries with a registered Preferred-Value are listed;
// lookups against these maps are exact-case against the case-regularized
// tag form.

// redundantTags maps whole redundant or grandfathered tags to their
// preferred value (RFC 5646 section 4.5 step 2).
var redundantTags = map[string]string{
	"art-lojban":  "jbo",
	"i-ami":       "ami",
	"i-bnn":       "bnn",
	"i-hak":       "hak",
	"i-klingon":   "tlh",
	"i-lux":       "lb",
	"i-navajo":    "nv",
	"i-pwn":       "pwn",
	"i-tao":       "tao",
	"i-tay":       "tay",
	"i-tsu":       "tsu",
	"no-bok":      "nb",
	"no-nyn":      "nn",
	"sgn-BE-FR":   "sfb",
	"sgn-BE-NL":   "vgt",
	"sgn-CH-DE":   "sgg",
	"zh-guoyu":    "cmn",
	"zh-hakka":    "hak",
	"zh-min-nan":  "nan",
	"zh-xiang":    "hsn",
	"sgn-BR":      "bzs",
	"sgn-CO":      "csn",
	"sgn-DE":      "gsg",
	"sgn-DK":      "dsl",
	"sgn-ES":      "ssp",
	"sgn-FR":      "fsl",
	"sgn-GB":      "bfi",
	"sgn-GR":      "gss",
	"sgn-IE":      "isg",
	"sgn-IT":      "ise",
	"sgn-JP":      "jsl",
	"sgn-MX":      "mfs",
	"sgn-NI":      "ncs",
	"sgn-NL":      "dse",
	"sgn-NO":      "nsl",
	"sgn-PT":      "psr",
	"sgn-SE":      "swl",
	"sgn-US":      "ase",
	"sgn-ZA":      "sfs",
	"zh-cmn":      "cmn",
	"zh-cmn-Hans": "cmn-Hans",
	"zh-cmn-Hant": "cmn-Hant",
	"zh-gan":      "gan",
	"zh-wuu":      "wuu",
	"zh-yue":      "yue",
}

// redundantSubtags maps individual deprecated region, variant and
// language subtags to their preferred value (RFC 5646 section 4.5
// step 3).
var redundantSubtags = map[string]string{
	"BU":     "MM",
	"DD":     "DE",
	"FX":     "FR",
	"TP":     "TL",
	"YD":     "YE",
	"ZR":     "CD",
	"heploc": "alalc97",
	"in":     "id",
	"iw":     "he",
	"ji":     "yi",
	"jw":     "jv",
	"mo":     "ro",
	"ayx":    "nun",
	"bjd":    "drl",
	"ccq":    "rki",
	"cjr":    "mom",
	"cka":    "cmr",
	"cmk":    "xch",
	"drh":    "khk",
	"drw":    "prs",
	"gav":    "dev",
	"hrr":    "jal",
	"ibi":    "opa",
	"kgh":    "kml",
	"lcq":    "ppr",
	"mst":    "mry",
	"myt":    "mry",
	"sca":    "hle",
	"tie":    "ras",
	"tkk":    "twm",
	"tlw":    "weo",
	"tnf":    "prs",
	"ybd":    "rki",
	"yma":    "lrr",
}

// extlangPrefix maps registered extlang subtags to their preferred
// primary subtag and the macrolanguage prefix that becomes redundant
// when the extlang is promoted (e.g. "zh-cmn" collapses to "cmn").
type extlangEntry struct {
	preferred string
	prefix    string
}

var extlangPrefixes = map[string]extlangEntry{
	"aao": {"aao", "ar"}, "abh": {"abh", "ar"}, "abv": {"abv", "ar"},
	"acm": {"acm", "ar"}, "acq": {"acq", "ar"}, "acw": {"acw", "ar"},
	"acx": {"acx", "ar"}, "acy": {"acy", "ar"}, "adf": {"adf", "ar"},
	"ads": {"ads", "sgn"}, "aeb": {"aeb", "ar"}, "aec": {"aec", "ar"},
	"aed": {"aed", "sgn"}, "aen": {"aen", "sgn"}, "afb": {"afb", "ar"},
	"afg": {"afg", "sgn"}, "ajp": {"ajp", "ar"}, "apc": {"apc", "ar"},
	"apd": {"apd", "ar"}, "arb": {"arb", "ar"}, "arq": {"arq", "ar"},
	"ars": {"ars", "ar"}, "ary": {"ary", "ar"}, "arz": {"arz", "ar"},
	"ase": {"ase", "sgn"}, "asf": {"asf", "sgn"}, "asp": {"asp", "sgn"},
	"asq": {"asq", "sgn"}, "asw": {"asw", "sgn"}, "auz": {"auz", "ar"},
	"avl": {"avl", "ar"}, "ayh": {"ayh", "ar"}, "ayl": {"ayl", "ar"},
	"ayn": {"ayn", "ar"}, "ayp": {"ayp", "ar"}, "bbz": {"bbz", "ar"},
	"bfi": {"bfi", "sgn"}, "bfk": {"bfk", "sgn"}, "bjn": {"bjn", "ms"},
	"bog": {"bog", "sgn"}, "bqn": {"bqn", "sgn"}, "bqy": {"bqy", "sgn"},
	"btj": {"btj", "ms"}, "bve": {"bve", "ms"}, "bvl": {"bvl", "sgn"},
	"bvu": {"bvu", "ms"}, "bzs": {"bzs", "sgn"}, "cdo": {"cdo", "zh"},
	"cds": {"cds", "sgn"}, "cjy": {"cjy", "zh"}, "cmn": {"cmn", "zh"},
	"coa": {"coa", "ms"}, "cpx": {"cpx", "zh"}, "csc": {"csc", "sgn"},
	"csd": {"csd", "sgn"}, "cse": {"cse", "sgn"}, "csf": {"csf", "sgn"},
	"csg": {"csg", "sgn"}, "csl": {"csl", "sgn"}, "csn": {"csn", "sgn"},
	"csq": {"csq", "sgn"}, "csr": {"csr", "sgn"}, "czh": {"czh", "zh"},
	"czo": {"czo", "zh"}, "doq": {"doq", "sgn"}, "dse": {"dse", "sgn"},
	"dsl": {"dsl", "sgn"}, "dup": {"dup", "ms"}, "ecs": {"ecs", "sgn"},
	"esl": {"esl", "sgn"}, "esn": {"esn", "sgn"}, "eso": {"eso", "sgn"},
	"eth": {"eth", "sgn"}, "fcs": {"fcs", "sgn"}, "fse": {"fse", "sgn"},
	"fsl": {"fsl", "sgn"}, "fss": {"fss", "sgn"}, "gan": {"gan", "zh"},
	"gds": {"gds", "sgn"}, "gom": {"gom", "kok"}, "gse": {"gse", "sgn"},
	"gsg": {"gsg", "sgn"}, "gsm": {"gsm", "sgn"}, "gss": {"gss", "sgn"},
	"gus": {"gus", "sgn"}, "hab": {"hab", "sgn"}, "haf": {"haf", "sgn"},
	"hak": {"hak", "zh"}, "hds": {"hds", "sgn"}, "hji": {"hji", "ms"},
	"hks": {"hks", "sgn"}, "hos": {"hos", "sgn"}, "hps": {"hps", "sgn"},
	"hsh": {"hsh", "sgn"}, "hsl": {"hsl", "sgn"}, "hsn": {"hsn", "zh"},
	"icl": {"icl", "sgn"}, "ils": {"ils", "sgn"}, "inl": {"inl", "sgn"},
	"ins": {"ins", "sgn"}, "ise": {"ise", "sgn"}, "isg": {"isg", "sgn"},
	"isr": {"isr", "sgn"}, "jak": {"jak", "ms"}, "jax": {"jax", "ms"},
	"jcs": {"jcs", "sgn"}, "jhs": {"jhs", "sgn"}, "jls": {"jls", "sgn"},
	"jos": {"jos", "sgn"}, "jsl": {"jsl", "sgn"}, "jus": {"jus", "sgn"},
	"kgi": {"kgi", "sgn"}, "knn": {"knn", "kok"}, "kvb": {"kvb", "ms"},
	"kvk": {"kvk", "sgn"}, "kvr": {"kvr", "ms"}, "kxd": {"kxd", "ms"},
	"lbs": {"lbs", "sgn"}, "lce": {"lce", "ms"}, "lcf": {"lcf", "ms"},
	"liw": {"liw", "ms"}, "lls": {"lls", "sgn"}, "lsg": {"lsg", "sgn"},
	"lsl": {"lsl", "sgn"}, "lso": {"lso", "sgn"}, "lsp": {"lsp", "sgn"},
	"lst": {"lst", "sgn"}, "lsy": {"lsy", "sgn"}, "ltg": {"ltg", "lv"},
	"lvs": {"lvs", "lv"}, "lzh": {"lzh", "zh"}, "max": {"max", "ms"},
	"mdl": {"mdl", "sgn"}, "meo": {"meo", "ms"}, "mfa": {"mfa", "ms"},
	"mfb": {"mfb", "ms"}, "mfs": {"mfs", "sgn"}, "min": {"min", "ms"},
	"mnp": {"mnp", "zh"}, "mqg": {"mqg", "ms"}, "mre": {"mre", "sgn"},
	"msd": {"msd", "sgn"}, "msi": {"msi", "ms"}, "msr": {"msr", "sgn"},
	"mui": {"mui", "ms"}, "mzc": {"mzc", "sgn"}, "mzg": {"mzg", "sgn"},
	"mzy": {"mzy", "sgn"}, "nan": {"nan", "zh"}, "nbs": {"nbs", "sgn"},
	"ncs": {"ncs", "sgn"}, "nsi": {"nsi", "sgn"}, "nsl": {"nsl", "sgn"},
	"nsp": {"nsp", "sgn"}, "nsr": {"nsr", "sgn"}, "nzs": {"nzs", "sgn"},
	"okl": {"okl", "sgn"}, "orn": {"orn", "ms"}, "ors": {"ors", "ms"},
	"pel": {"pel", "ms"}, "pga": {"pga", "ar"}, "pks": {"pks", "sgn"},
	"prl": {"prl", "sgn"}, "prz": {"prz", "sgn"}, "psc": {"psc", "sgn"},
	"psd": {"psd", "sgn"}, "pse": {"pse", "ms"}, "psg": {"psg", "sgn"},
	"psl": {"psl", "sgn"}, "pso": {"pso", "sgn"}, "psp": {"psp", "sgn"},
	"psr": {"psr", "sgn"}, "pys": {"pys", "sgn"}, "rms": {"rms", "sgn"},
	"rsi": {"rsi", "sgn"}, "rsl": {"rsl", "sgn"}, "sdl": {"sdl", "sgn"},
	"sfb": {"sfb", "sgn"}, "sfs": {"sfs", "sgn"}, "sgg": {"sgg", "sgn"},
	"sgx": {"sgx", "sgn"}, "shu": {"shu", "ar"}, "slf": {"slf", "sgn"},
	"sls": {"sls", "sgn"}, "sqk": {"sqk", "sgn"}, "sqs": {"sqs", "sgn"},
	"ssh": {"ssh", "ar"}, "ssp": {"ssp", "sgn"}, "ssr": {"ssr", "sgn"},
	"svk": {"svk", "sgn"}, "swc": {"swc", "sw"}, "swh": {"swh", "sw"},
	"swl": {"swl", "sgn"}, "syy": {"syy", "sgn"}, "tmw": {"tmw", "ms"},
	"tse": {"tse", "sgn"}, "tsm": {"tsm", "sgn"}, "tsq": {"tsq", "sgn"},
	"tss": {"tss", "sgn"}, "tsy": {"tsy", "sgn"}, "tza": {"tza", "sgn"},
	"ugn": {"ugn", "sgn"}, "ugy": {"ugy", "sgn"}, "ukl": {"ukl", "sgn"},
	"uks": {"uks", "sgn"}, "urk": {"urk", "ms"}, "uzn": {"uzn", "uz"},
	"uzs": {"uzs", "uz"}, "vgt": {"vgt", "sgn"}, "vkk": {"vkk", "ms"},
	"vkt": {"vkt", "ms"}, "vsi": {"vsi", "sgn"}, "vsl": {"vsl", "sgn"},
	"vsv": {"vsv", "sgn"}, "wuu": {"wuu", "zh"}, "xki": {"xki", "sgn"},
	"xml": {"xml", "sgn"}, "xmm": {"xmm", "ms"}, "xms": {"xms", "sgn"},
	"yds": {"yds", "sgn"}, "ysl": {"ysl", "sgn"}, "yue": {"yue", "zh"},
	"zib": {"zib", "sgn"}, "zlm": {"zlm", "ms"}, "zmi": {"zmi", "ms"},
	"zsl": {"zsl", "sgn"}, "zsm": {"zsm", "ms"},
}
