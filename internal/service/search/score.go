package search

import (
	"sort"
	"strings"
	"time"

	"github.com/Domenick1991/tripmate/internal/domain"
)

const (
	scoreDestination = 40
	scoreDates       = 25
	scoreBudget      = 15
	scorePerInterest = 2
	scoreInterestCap = 10
	scoreStyle       = 10

	// MatchThreshold is exclusive: a candidate needs strictly more to be kept.
	MatchThreshold = 50
)

type ScoredPlan struct {
	Plan  domain.TravelPlan `json:"plan"`
	Score int               `json:"score"`
}

type BuddyMatch struct {
	Buddy domain.TravelBuddy `json:"buddy"`
	Score int                `json:"score"`
}

// ScorePlan rates how well candidate fits plan, from 0 to 100. Destinations
// match case-insensitively; budget and travel style must match exactly.
func ScorePlan(plan, candidate domain.TravelPlan) int {
	score := 0
	if plan.Destination != "" && strings.EqualFold(plan.Destination, candidate.Destination) {
		score += scoreDestination
	}
	if datesOverlap(plan, candidate) {
		score += scoreDates
	}
	if plan.Budget != "" && plan.Budget == candidate.Budget {
		score += scoreBudget
	}
	score += min(scorePerInterest*shared(plan.Interests, candidate.Interests), scoreInterestCap)
	if plan.TravelStyle != "" && plan.TravelStyle == candidate.TravelStyle {
		score += scoreStyle
	}
	return max(0, min(score, 100))
}

// FindTravelMatches keeps candidates scoring above MatchThreshold, best first.
// Equal scores keep their candidate order.
func FindTravelMatches(plan domain.TravelPlan, candidates []domain.TravelPlan) []ScoredPlan {
	out := make([]ScoredPlan, 0)
	for _, c := range candidates {
		if score := ScorePlan(plan, c); score > MatchThreshold {
			out = append(out, ScoredPlan{Plan: c, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func PlanFromBuddy(b domain.TravelBuddy) domain.TravelPlan {
	return domain.TravelPlan{
		UserID:      b.ID,
		Destination: b.Destination,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Budget:      b.BudgetRange,
		Interests:   b.Interests,
		TravelStyle: b.TravelStyle,
	}
}

// datesOverlap is an inclusive interval test. Unparseable or inverted ranges never overlap.
func datesOverlap(a, b domain.TravelPlan) bool {
	aStart, aEnd, ok := dateRange(a)
	if !ok {
		return false
	}
	bStart, bEnd, ok := dateRange(b)
	if !ok {
		return false
	}
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

func dateRange(p domain.TravelPlan) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
