package statistics

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultAlpha is the significance level used for pairwise comparisons.
const DefaultAlpha = 0.05

// Comparison is a Welch two-sample t-test of A against B.
type Comparison struct {
	A           string  `json:"a"`
	B           string  `json:"b"`
	MeanA       float64 `json:"mean_a"`
	MeanB       float64 `json:"mean_b"`
	Difference  float64 `json:"difference"` // MeanA - MeanB
	StdError    float64 `json:"std_error"`
	TStatistic  float64 `json:"t_statistic"`
	DF          float64 `json:"df"`
	PValue      float64 `json:"p_value"`
	EffectSize  float64 `json:"effect_size"` // Cohen's d
	CI95Low     float64 `json:"ci95_low"`
	CI95High    float64 `json:"ci95_high"`
	Significant bool    `json:"significant"`
}

// Winner returns the name with the higher mean when the difference is
// significant, or "" otherwise.
func (c Comparison) Winner() string {
	if !c.Significant {
		return ""
	}
	if c.Difference > 0 {
		return c.A
	}
	return c.B
}

// Welch compares two score samples without assuming equal variances.
func Welch(nameA string, a []float64, nameB string, b []float64, alpha float64) Comparison {
	c := Comparison{A: nameA, B: nameB}
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 {
		c.PValue = 1
		return c
	}

	var var1, var2 float64
	c.MeanA, var1 = stat.MeanVariance(a, nil)
	c.MeanB, var2 = stat.MeanVariance(b, nil)
	if n1 < 2 {
		var1 = 0
	}
	if n2 < 2 {
		var2 = 0
	}
	sd1, sd2 := math.Sqrt(var1), math.Sqrt(var2)
	c.Difference = c.MeanA - c.MeanB

	if pooled := pooledStdDev(sd1, n1, sd2, n2); pooled > 0 {
		c.EffectSize = c.Difference / pooled
	}

	c.StdError = math.Sqrt(var1/float64(n1) + var2/float64(n2))
	c.DF = welchDF(sd1, n1, sd2, n2)

	switch {
	case c.StdError > 0:
		c.TStatistic = c.Difference / c.StdError
		c.PValue = pValue(c.TStatistic, c.DF)
		tDist := distuv.StudentsT{Nu: c.DF, Mu: 0, Sigma: 1}
		margin := tDist.Quantile(0.975) * c.StdError
		c.CI95Low, c.CI95High = c.Difference-margin, c.Difference+margin
	case c.Difference == 0:
		// Two identical constant samples.
		c.PValue = 1
		c.CI95Low, c.CI95High = 0, 0
	default:
		c.TStatistic = math.Copysign(math.Inf(1), c.Difference)
		c.PValue = 0
		c.CI95Low, c.CI95High = c.Difference, c.Difference
	}

	c.Significant = c.PValue < alpha
	return c
}

// Compare runs Welch on two accumulated samples.
func Compare(nameA string, a *Statistics, nameB string, b *Statistics, alpha float64) Comparison {
	return Welch(nameA, a.Values, nameB, b.Values, alpha)
}

// Sample is a named score sample.
type Sample struct {
	Name   string
	Scores []int
}

// Floats converts the scores for the float-based helpers.
func (s Sample) Floats() []float64 {
	out := make([]float64, len(s.Scores))
	for i, v := range s.Scores {
		out[i] = float64(v)
	}
	return out
}

// Pairwise compares every pair of samples, in input order (i < j).
func Pairwise(samples []Sample, alpha float64) []Comparison {
	floats := make([][]float64, len(samples))
	for i, s := range samples {
		floats[i] = s.Floats()
	}
	var out []Comparison
	for i := range samples {
		for j := i + 1; j < len(samples); j++ {
			out = append(out, Welch(samples[i].Name, floats[i], samples[j].Name, floats[j], alpha))
		}
	}
	return out
}

// pooledStdDev calculates pooled standard deviation for two groups
func pooledStdDev(sd1 float64, n1 int, sd2 float64, n2 int) float64 {
	if n1+n2 <= 2 {
		return 0
	}
	pooledVar := (float64(n1-1)*sd1*sd1 + float64(n2-1)*sd2*sd2) / float64(n1+n2-2)
	return math.Sqrt(pooledVar)
}

// welchDF calculates degrees of freedom using the Welch-Satterthwaite equation
func welchDF(sd1 float64, n1 int, sd2 float64, n2 int) float64 {
	if n1 <= 1 || n2 <= 1 {
		return 1
	}

	v1 := sd1 * sd1 / float64(n1)
	v2 := sd2 * sd2 / float64(n2)

	numerator := (v1 + v2) * (v1 + v2)
	denominator := (v1*v1)/float64(n1-1) + (v2*v2)/float64(n2-1)

	if denominator == 0 {
		return float64(n1 + n2 - 2)
	}
	return numerator / denominator
}

// pValue returns the two-tailed p-value of t under Student's t with df
// degrees of freedom.
func pValue(t, df float64) float64 {
	if df <= 0 || math.IsNaN(t) {
		return 1
	}
	tDist := distuv.StudentsT{Nu: df, Mu: 0, Sigma: 1}

	p := 2 * (1 - tDist.CDF(math.Abs(t)))
	if p > 1 {
		return 1
	} else if p < 0 {
		return 0
	}
	return p
}

// InterpretEffectSize returns a human-readable interpretation of Cohen's d
func InterpretEffectSize(d float64) string {
	absd := math.Abs(d)
	switch {
	case absd < 0.2:
		return "negligible"
	case absd < 0.5:
		return "small"
	case absd < 0.8:
		return "medium"
	default:
		return "large"
	}
}

// InterpretPValue returns a human-readable interpretation of p-value
func InterpretPValue(p float64, alpha float64) string {
	switch {
	case p < 0.001:
		return "highly significant"
	case p < 0.01:
		return "very significant"
	case p < alpha:
		return "significant"
	case p < 0.10:
		return "marginally significant"
	default:
		return "not significant"
	}
}
