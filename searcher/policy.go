package searcher

import "math"

type uct struct {
	numerator float64
}

// newUCT prepares the exploration term for the children of a parent visited N times
func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// score is the UCT value of a child, +Inf while it has never been simulated
func (u uct) score(wins, visits int) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return u.evaluate(float64(wins), float64(visits))
}
