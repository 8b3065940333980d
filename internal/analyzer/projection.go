package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

const (
	defaultReturnRate = 0.05
	maxHorizonYears   = 50
)

var (
	retireInRe = regexp.MustCompile(`retire in (\d+) years?`)
	retireAtRe = regexp.MustCompile(`retire at (?:age )?(\d+)`)
	inYearsRe  = regexp.MustCompile(`in (\d+) years?`)
)

// horizonYears extracts the projection horizon from the query, falling back
// to the record's retirement age goal.
func horizonYears(text string, rec *domain.Record) int {
	lower := strings.ToLower(text)
	remaining := rec.RetirementAgeGoal - rec.Age

	if m := retireInRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return clampYears(n)
		}
	}
	if m := retireAtRe.FindStringSubmatch(lower); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil {
			return clampYears(age - rec.Age)
		}
	}
	if strings.Contains(lower, "retire next year") {
		return 1
	}
	if strings.Contains(lower, "retire early") || strings.Contains(lower, "retire soon") {
		return clampYears(min(5, remaining))
	}
	if m := inYearsRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return clampYears(n)
		}
	}
	return clampYears(remaining)
}

func clampYears(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxHorizonYears {
		return maxHorizonYears
	}
	return n
}

// cappedRate bounds optimistic return assumptions over long horizons.
func cappedRate(rate float64, years int) float64 {
	if rate <= 0 {
		rate = defaultReturnRate
	}
	switch {
	case years > 20 && rate > 0.06:
		return 0.06
	case years > 10 && rate > 0.07:
		return 0.07
	default:
		return rate
	}
}

// futureValueSeries computes the year-by-year compound value of current
// savings plus annual contributions.
func futureValueSeries(rec *domain.Record, years int) []domain.Point {
	rate := cappedRate(rec.AnnualReturnRate, years)
	contrib := rec.ContributionAmount + rec.EmployerContribution

	series := make([]domain.Point, 0, years)
	for n := 1; n <= years; n++ {
		growth := math.Pow(1+rate, float64(n))
		value := rec.CurrentSavings*growth + contrib*((growth-1)/rate)
		series = append(series, domain.Point{
			Label: fmt.Sprintf("Year %d", n),
			Value: math.Round(value*100) / 100,
		})
	}
	return series
}
