package review

import (
	"context"
	"math"

	"github.com/Domenick1991/tripmate/internal/domain"
)

type CategoryAverage struct {
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// Averages has an entry for every category of the review type. Categories
// nobody rated report a zero mean over zero reviews.
type Averages struct {
	Count      int                        `json:"count"`
	Overall    float64                    `json:"overall"`
	Categories map[string]CategoryAverage `json:"categories"`
}

type Summary struct {
	Averages
	// Distribution counts reviews by overall stars, rounded, keyed 1 to 5.
	Distribution map[int]int `json:"distribution"`
	HelpfulVotes int         `json:"helpfulVotes"`
}

func (s *ReviewService) AverageRatings(_ context.Context, t domain.ReviewType, targetID string) Averages {
	s.mu.Lock()
	reviews := s.forTarget(t, targetID)
	s.mu.Unlock()
	return averages(t, reviews)
}

func (s *ReviewService) Summary(_ context.Context, t domain.ReviewType, targetID string) Summary {
	s.mu.Lock()
	reviews := s.forTarget(t, targetID)
	s.mu.Unlock()

	sum := Summary{
		Averages:     averages(t, reviews),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	for _, r := range reviews {
		stars := int(math.Round(r.Ratings.Overall))
		sum.Distribution[max(1, min(stars, 5))]++
		sum.HelpfulVotes += len(r.HelpfulVotes)
	}
	return sum
}

// averages excludes unrated fields from each category mean.
func averages(t domain.ReviewType, reviews []domain.Review) Averages {
	type acc struct {
		total float64
		n     int
	}
	per := make(map[string]*acc)
	for _, name := range t.Categories() {
		per[name] = &acc{}
	}

	var overall float64
	for _, r := range reviews {
		overall += r.Ratings.Overall
		for name, v := range r.Ratings.Categories(t) {
			if a, ok := per[name]; ok {
				a.total += v
				a.n++
			}
		}
	}

	out := Averages{
		Count:      len(reviews),
		Categories: make(map[string]CategoryAverage, len(per)),
	}
	if len(reviews) > 0 {
		out.Overall = round2(overall / float64(len(reviews)))
	}
	for name, a := range per {
		avg := CategoryAverage{Count: a.n}
		if a.n > 0 {
			avg.Mean = round2(a.total / float64(a.n))
		}
		out.Categories[name] = avg
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
