package sentiment

// Polarity weights in [-1, 1] for words that commonly show up in event
// feedback. Scoring averages the weights of matched words, so short emphatic
// answers ("amazing!") land near the word weight itself while mixed sentences
// settle toward the middle.
var lexicon = map[string]float64{
	// positive
	"amazing":     0.9,
	"excellent":   0.9,
	"fantastic":   0.9,
	"wonderful":   0.9,
	"brilliant":   0.9,
	"outstanding": 0.9,
	"superb":      0.9,
	"best":        0.8,
	"loved":       0.8,
	"love":        0.7,
	"great":       0.7,
	"inspiring":   0.7,
	"engaging":    0.6,
	"enjoyable":   0.6,
	"enjoyed":     0.6,
	"informative": 0.6,
	"helpful":     0.6,
	"friendly":    0.6,
	"welcoming":   0.6,
	"good":        0.5,
	"interesting": 0.5,
	"insightful":  0.5,
	"valuable":    0.5,
	"useful":      0.5,
	"pleasant":    0.5,
	"recommend":   0.5,
	"nice":        0.4,
	"liked":       0.4,
	"fine":        0.2,
	"okay":        0.1,
	"ok":          0.1,

	// negative
	"terrible":       -0.9,
	"awful":          -0.9,
	"horrible":       -0.9,
	"worst":          -0.9,
	"hated":          -0.8,
	"hate":           -0.7,
	"bad":            -0.6,
	"poor":           -0.6,
	"disappointing":  -0.6,
	"disappointed":   -0.6,
	"boring":         -0.6,
	"frustrating":    -0.6,
	"confusing":      -0.5,
	"disorganised":   -0.5,
	"disorganized":   -0.5,
	"unhelpful":      -0.5,
	"uncomfortable":  -0.5,
	"crowded":        -0.4,
	"slow":           -0.4,
	"late":           -0.3,
	"loud":           -0.3,
	"long":           -0.2,
	"expensive":      -0.3,
	"cold":           -0.2,
	"uninteresting":  -0.5,
	"waste":          -0.7,
	"rude":           -0.7,
	"inaccessible":   -0.5,
	"underwhelming":  -0.5,
	"overcrowded":    -0.5,
	"unprofessional": -0.6,
}

// negations flip the sign of the sentiment word that follows them.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"nothing": true,
	"hardly":  true,
	"wasn't":  true,
	"wasnt":   true,
	"isn't":   true,
	"isnt":    true,
	"didn't":  true,
	"didnt":   true,
}
