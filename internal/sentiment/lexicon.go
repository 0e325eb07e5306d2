package sentiment

// buildLexicon returns the weighted word list tuned for financial and
// crypto headlines. Weights stay within [-1, 1] per word; the analyzer
// validates this at construction.
func buildLexicon() map[string]float64 {
	return map[string]float64{
		// positive, general market
		"bullish":      1.0,
		"bull":         0.9,
		"rally":        0.9,
		"surge":        0.8,
		"surges":       0.8,
		"soar":         0.8,
		"soars":        0.8,
		"jump":         0.6,
		"jumps":        0.6,
		"gain":         0.6,
		"gains":        0.6,
		"profit":       0.6,
		"record":       0.5,
		"win":          0.6,
		"wins":         0.6,
		"rise":         0.5,
		"rises":        0.5,
		"grow":         0.5,
		"growth":       0.5,
		"recovery":     0.6,
		"rebound":      0.6,
		"optimism":     0.6,
		"optimistic":   0.5,
		"positive":     0.5,
		"strong":       0.4,
		"breakthrough": 0.6,
		"adoption":     0.6,
		"partnership":  0.5,
		"upgrade":      0.5,
		"innovation":   0.5,

		// positive, crypto specific
		"halving":       0.6,
		"breakout":      0.7,
		"ath":           0.8,
		"institutional": 0.5,
		"etf":           0.7,
		"approved":      0.6,
		"approval":      0.6,
		"accumulation":  0.5,

		// negative, general market
		"bearish":     -1.0,
		"bear":        -0.9,
		"crash":       -1.0,
		"crashes":     -1.0,
		"plunge":      -0.8,
		"plunges":     -0.8,
		"tumble":      -0.7,
		"tumbles":     -0.7,
		"slump":       -0.7,
		"fall":        -0.6,
		"falls":       -0.6,
		"drop":        -0.6,
		"drops":       -0.6,
		"decline":     -0.6,
		"loss":        -0.7,
		"losses":      -0.7,
		"weak":        -0.4,
		"fear":        -0.6,
		"fears":       -0.6,
		"panic":       -0.8,
		"selloff":     -0.7,
		"correction":  -0.6,
		"recession":   -0.8,
		"crisis":      -0.8,
		"turmoil":     -0.7,
		"negative":    -0.5,
		"pessimistic": -0.5,
		"warning":     -0.5,
		"sanctions":   -0.5,
		"tariffs":     -0.4,
		"conflict":    -0.6,
		"war":         -0.7,

		// negative, crypto specific
		"hack":         -1.0,
		"hacked":       -1.0,
		"exploit":      -1.0,
		"scam":         -1.0,
		"rug":          -1.0,
		"ponzi":        -1.0,
		"fraud":        -1.0,
		"lawsuit":      -0.7,
		"ban":          -0.8,
		"bans":         -0.8,
		"crackdown":    -0.7,
		"liquidation":  -0.8,
		"capitulation": -0.8,
		"fud":          -0.7,
		"bubble":       -0.6,
		"overvalued":   -0.6,
	}
}

// buildBoosters returns intensifiers that amplify an adjacent match
func buildBoosters() map[string]struct{} {
	words := []string{
		"massive", "huge", "sharp", "sharply", "major", "historic",
		"extremely", "very", "record-breaking", "dramatic",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// buildNegators returns words that flip polarity within the window
func buildNegators() map[string]struct{} {
	words := []string{
		"no", "not", "never", "without", "despite", "avoids", "avoided",
		"denies", "denied", "halts",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
