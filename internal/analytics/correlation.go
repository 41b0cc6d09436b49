package analytics

import (
	"math"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/ledger"
)

// completionVector renders a habit's history over days as a 0/1 vector.
func completionVector(l ledger.Ledger, habitID string, days []time.Time) []float64 {
	v := make([]float64, len(days))
	for i, day := range days {
		if l.IsCompleted(calendar.FormatDay(day), habitID) {
			v[i] = 1
		}
	}
	return v
}

// PearsonCorrelation is the Pearson coefficient over two habits' binary
// completion vectors across days. Returns 0 when either vector has zero
// variance instead of dividing by zero.
func (e *Engine) PearsonCorrelation(l ledger.Ledger, habitA, habitB string, days []time.Time) float64 {
	if len(days) == 0 {
		return 0
	}
	a := completionVector(l, habitA, days)
	b := completionVector(l, habitB, days)

	n := float64(len(days))
	var sumA, sumB float64
	for i := range a {
		sumA += a[i]
		sumB += b[i]
	}
	meanA, meanB := sumA/n, sumB/n

	var cov, varA, varB float64
	for i := range a {
		da, db := a[i]-meanA, b[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	denom := math.Sqrt(varA * varB)
	if denom == 0 {
		return 0
	}
	return cov / denom
}

// CorrelationMatrix builds the symmetric habit-by-habit correlation matrix
// over days. The diagonal is always 1; off-diagonal cells come from
// PearsonCorrelation and are mirrored rather than recomputed.
func (e *Engine) CorrelationMatrix(l ledger.Ledger, habitIDs []string, days []time.Time) [][]float64 {
	n := len(habitIDs)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := e.PearsonCorrelation(l, habitIDs[i], habitIDs[j], days)
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}
	return matrix
}
