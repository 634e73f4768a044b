package rating

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinScore = 1
	MaxScore = 5

	glyphFull  = "★"
	glyphHalf  = "⯪"
	glyphEmpty = "☆"

	notRatedText = "Not rated yet"
)

// Aggregate is the sum and count of non-null scores for one book. Both are nil
// when the book has no qualifying ratings.
type Aggregate struct {
	TotalScore *int `json:"total_score"`
	TotalCount *int `json:"total_count"`
}

// Stats summarises one user's ratings.
type Stats struct {
	RatingsCount  int     `json:"ratings_count"`
	AverageRating float64 `json:"average_rating"`
}

// Summary is the display form of an Aggregate.
type Summary struct {
	Rated      bool    `json:"rated"`
	Average    float64 `json:"average,omitempty"`
	Full       int     `json:"full_stars"`
	Half       int     `json:"half_stars"`
	Empty      int     `json:"empty_stars"`
	Stars      string  `json:"stars,omitempty"`
	Label      string  `json:"label,omitempty"`
	CountLabel string  `json:"count_label,omitempty"`
	Text       string  `json:"text"`
}

// RenderSummary turns a total and a count into a five-glyph star rating with
// a "<avg>/5" label and, when showCount is set, a "<n> Ratings" label.
func RenderSummary(totalScore, totalCount *int, showCount bool) Summary {
	if totalScore == nil || totalCount == nil || *totalCount <= 0 {
		return Summary{Text: notRatedText}
	}

	average := float64(*totalScore) / float64(*totalCount)
	average = math.Max(0, math.Min(average, MaxScore))

	whole := int(math.Floor(average))
	fractional := average - float64(whole)

	s := Summary{Rated: true, Average: average, Full: whole}
	if fractional >= 0.5 {
		s.Half = 1
		s.Empty = MaxScore - 1 - whole
	} else {
		s.Empty = MaxScore - whole
	}

	s.Stars = strings.Repeat(glyphFull, s.Full) +
		strings.Repeat(glyphHalf, s.Half) +
		strings.Repeat(glyphEmpty, s.Empty)
	s.Label = FormatAverage(average) + "/5"

	parts := []string{s.Stars, s.Label}
	if showCount {
		s.CountLabel = strconv.Itoa(*totalCount) + " Ratings"
		parts = append(parts, s.CountLabel)
	}
	s.Text = strings.Join(parts, " ")
	return s
}

// FormatAverage prints a whole average without decimals and anything else
// rounded to one decimal place.
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(math.Round(avg*10)/10, 'f', -1, 64)
}

// ValidScore reports whether score is inside [MinScore, MaxScore].
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}
