package sentiment

// indicator is a financial phrase with its sentiment weight. Ordered slices
// keep match reporting deterministic.
type indicator struct {
	Phrase string
	Weight float64
}

// Indian financial market positive indicators.
var positiveIndicators = []indicator{
	{"partnership", 0.5}, {"pact", 0.5}, {"agreement", 0.4}, {"tie-up", 0.4},
	{"collaboration", 0.4}, {"alliance", 0.4}, {"joint venture", 0.5},
	{"launch", 0.4}, {"introduces", 0.4}, {"expansion", 0.5}, {"foray", 0.4},
	{"growth", 0.4}, {"increase", 0.3}, {"rise", 0.3}, {"surge", 0.5},
	{"profit", 0.6}, {"revenue growth", 0.5}, {"earnings", 0.4}, {"dividend", 0.4},
	{"buyback", 0.5}, {"bonus", 0.3}, {"record", 0.4}, {"strong", 0.3},
	{"market share", 0.4}, {"leadership", 0.4}, {"milestone", 0.4},
	{"breakthrough", 0.5}, {"innovation", 0.4}, {"patent", 0.3},
	{"contract", 0.4}, {"deal", 0.4}, {"order", 0.3}, {"wins", 0.5},
	{"acquisition", 0.4}, {"investment", 0.4}, {"funding", 0.4},
}

// Indian financial market negative indicators.
var negativeIndicators = []indicator{
	{"slashed", -0.7}, {"cut", -0.5}, {"reduced", -0.4}, {"lowered", -0.4},
	{"downgrade", -0.6}, {"target cut", -0.6}, {"price target slashed", -0.8},
	{"decline", -0.4}, {"fall", -0.4}, {"drop", -0.5}, {"plunge", -0.7},
	{"loss", -0.6}, {"losses", -0.6}, {"deficit", -0.5}, {"negative", -0.3},
	{"bearish", -0.5}, {"concern", -0.4}, {"worry", -0.4}, {"fear", -0.5},
	{"uncertainty", -0.4}, {"volatility", -0.3}, {"risk", -0.3},
	{"investigation", -0.6}, {"probe", -0.5}, {"lawsuit", -0.5},
	{"penalty", -0.5}, {"fine", -0.4}, {"scandal", -0.8},
	{"layoffs", -0.7}, {"restructuring", -0.4}, {"closure", -0.6},
	{"bankruptcy", -0.9}, {"debt", -0.4},
}
