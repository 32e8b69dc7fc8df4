// Package analysis derives progress metrics from recorded training attempts.
package analysis

import (
	"sort"
	"time"

	"github.com/cubetools/plltrainer/internal/storage"
)

// TrendReport summarizes how recognition of a case develops over time.
// Timing metrics only count correct attempts; a wrong answer has no
// meaningful reaction time.
type TrendReport struct {
	CaseName        string          `json:"case_name"`
	TotalAttempts   int             `json:"total_attempts"`
	CorrectAttempts int             `json:"correct_attempts"`
	AccuracyPct     float64         `json:"accuracy_pct"`
	DateRange       DateRange       `json:"date_range"`

	AvgMs  float64 `json:"avg_ms"`
	BestMs int64   `json:"best_ms"`

	ImprovementPct   float64 `json:"improvement_pct"`
	ConsistencyScore float64 `json:"consistency_score"`

	// Rolling averages over the last 5, 10 and 25 correct attempts.
	RollingAvgs map[int]float64 `json:"rolling_averages"`
}

// DateRange represents a date range.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AnalyzeTrend analyzes recognition progress for one case from its attempts.
func AnalyzeTrend(caseName string, attempts []storage.Attempt) *TrendReport {
	report := &TrendReport{
		CaseName:      caseName,
		TotalAttempts: len(attempts),
		RollingAvgs:   make(map[int]float64),
	}

	if len(attempts) == 0 {
		return report
	}

	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].CreatedAt.Before(attempts[j].CreatedAt)
	})

	report.DateRange = DateRange{
		Start: attempts[0].CreatedAt.Format(time.RFC3339),
		End:   attempts[len(attempts)-1].CreatedAt.Format(time.RFC3339),
	}

	var correct []storage.Attempt
	var totalMs int64
	bestMs := int64(-1)

	for _, a := range attempts {
		if !a.IsCorrect {
			continue
		}
		correct = append(correct, a)
		totalMs += a.ReactionMs
		if bestMs < 0 || a.ReactionMs < bestMs {
			bestMs = a.ReactionMs
		}
	}

	report.CorrectAttempts = len(correct)
	report.AccuracyPct = float64(len(correct)) / float64(len(attempts)) * 100

	if len(correct) > 0 {
		report.AvgMs = float64(totalMs) / float64(len(correct))
		report.BestMs = bestMs
	}

	report.ImprovementPct = calculateImprovement(correct)
	report.ConsistencyScore = calculateConsistency(correct)

	for _, n := range []int{5, 10, 25} {
		if len(correct) >= n {
			recent := correct[len(correct)-n:]
			var sum int64
			for _, a := range recent {
				sum += a.ReactionMs
			}
			report.RollingAvgs[n] = float64(sum) / float64(n)
		}
	}

	return report
}

// calculateImprovement compares the first quarter of correct attempts to
// the last quarter. Positive means reaction times went down.
func calculateImprovement(attempts []storage.Attempt) float64 {
	if len(attempts) < 4 {
		return 0
	}

	quarterSize := len(attempts) / 4
	if quarterSize == 0 {
		quarterSize = 1
	}

	var firstSum int64
	for i := 0; i < quarterSize; i++ {
		firstSum += attempts[i].ReactionMs
	}
	firstAvg := float64(firstSum) / float64(quarterSize)

	var lastSum int64
	for i := len(attempts) - quarterSize; i < len(attempts); i++ {
		lastSum += attempts[i].ReactionMs
	}
	lastAvg := float64(lastSum) / float64(quarterSize)

	if firstAvg <= 0 {
		return 0
	}

	return ((firstAvg - lastAvg) / firstAvg) * 100
}

// calculateConsistency scores reaction time spread on a 0-100 scale,
// higher meaning more consistent.
func calculateConsistency(attempts []storage.Attempt) float64 {
	if len(attempts) < 2 {
		return 100
	}

	var sum float64
	for _, a := range attempts {
		sum += float64(a.ReactionMs)
	}
	mean := sum / float64(len(attempts))

	var sumSquares float64
	for _, a := range attempts {
		diff := float64(a.ReactionMs) - mean
		sumSquares += diff * diff
	}
	variance := sumSquares / float64(len(attempts))

	if mean <= 0 {
		return 100
	}
	cv := variance / (mean * mean)

	score := 100 - (cv * 100)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}
