package review

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/kafka"
	"github.com/Domenick1991/tripmate/internal/metrics"
	"github.com/Domenick1991/tripmate/internal/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortHelpful SortOrder = "helpful"
	SortHighest SortOrder = "highest"
	SortLowest  SortOrder = "lowest"
)

// TargetResolver names the catalog entity a review points at.
type TargetResolver interface {
	TargetName(t domain.ReviewType, id string) (string, bool)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.TravelEvent) error
}

type Submission struct {
	Type       domain.ReviewType `json:"type" validate:"required,review_type"`
	TargetID   string            `json:"targetId" validate:"required"`
	AuthorID   string            `json:"-"`
	AuthorName string            `json:"-"`
	Ratings    domain.Ratings    `json:"ratings"`
	Title      string            `json:"title" validate:"required,notblank,max=200"`
	Comment    string            `json:"comment" validate:"required,notblank"`
	Pros       []string          `json:"pros"`
	Cons       []string          `json:"cons"`
	Tips       []string          `json:"tips"`
	Photos     []string          `json:"photos" validate:"max=10"`
	TripType   string            `json:"tripType"`
}

type ReviewUseCase interface {
	Submit(ctx context.Context, s Submission) (domain.Review, error)
	ReviewsForTarget(ctx context.Context, t domain.ReviewType, targetID string, order SortOrder) []domain.Review
	AverageRatings(ctx context.Context, t domain.ReviewType, targetID string) Averages
	Summary(ctx context.Context, t domain.ReviewType, targetID string) Summary
	VoteHelpful(ctx context.Context, reviewID, userID string, helpful bool) (domain.Review, bool)
	Respond(ctx context.Context, reviewID string, responder domain.User, text string) (domain.Review, error)
}

type Option func(*ReviewService)

func WithClock(now func() time.Time) Option {
	return func(s *ReviewService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *ReviewService) {
		s.newID = newID
	}
}

func WithPublisher(p EventPublisher) Option {
	return func(s *ReviewService) {
		s.publisher = p
	}
}

// WithAutoVerify sets the verified flags stamped on new reviews. Nothing is
// actually checked; the default is true.
func WithAutoVerify(verify bool) Option {
	return func(s *ReviewService) {
		s.autoVerify = verify
	}
}

// ReviewService keeps the global review collection, newest first, and
// writes it through to kv on every mutation.
type ReviewService struct {
	mu      sync.Mutex
	kv      storage.KV
	targets TargetResolver
	log     logrus.FieldLogger

	validator  *submissionValidator
	now        func() time.Time
	newID      func() string
	publisher  EventPublisher
	autoVerify bool

	reviews []domain.Review
}

func NewReviewService(kv storage.KV, targets TargetResolver, log logrus.FieldLogger, opts ...Option) *ReviewService {
	s := &ReviewService{
		kv:         kv,
		targets:    targets,
		log:        log,
		validator:  newSubmissionValidator(),
		now:        time.Now,
		newID:      uuid.NewString,
		autoVerify: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate loads the persisted collection. An unreadable blob leaves it empty.
func (s *ReviewService) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reviews []domain.Review
	found, err := storage.LoadJSON(ctx, s.kv, storage.KeyReviews, &reviews)
	if err != nil {
		s.log.WithError(err).Warn("failed to load reviews, starting empty")
		found = false
	}
	if !found {
		reviews = nil
	}
	s.reviews = reviews
	s.log.WithField("reviews", len(reviews)).Info("reviews hydrated")
}

func (s *ReviewService) Submit(ctx context.Context, sub Submission) (domain.Review, error) {
	if sub.AuthorID == "" {
		return domain.Review{}, fmt.Errorf("submit review: %w", domain.ErrUnauthenticated)
	}
	if err := s.validator.Validate(&sub); err != nil {
		return domain.Review{}, err
	}
	name, ok := s.targets.TargetName(sub.Type, sub.TargetID)
	if !ok {
		return domain.Review{}, fmt.Errorf("%s %q: %w", sub.Type, sub.TargetID, domain.ErrInvalidTarget)
	}

	r := domain.Review{
		ID:               s.newID(),
		Type:             sub.Type,
		TargetID:         sub.TargetID,
		TargetName:       name,
		AuthorID:         sub.AuthorID,
		AuthorName:       sub.AuthorName,
		Ratings:          sub.Ratings,
		Title:            strings.TrimSpace(sub.Title),
		Comment:          strings.TrimSpace(sub.Comment),
		Pros:             sub.Pros,
		Cons:             sub.Cons,
		Tips:             sub.Tips,
		Photos:           sub.Photos,
		TripType:         sub.TripType,
		HelpfulVotes:     []string{},
		NotHelpfulVotes:  []string{},
		Verified:         s.autoVerify,
		VerifiedPurchase: s.autoVerify,
		CreatedAt:        s.now(),
	}

	s.mu.Lock()
	s.reviews = append([]domain.Review{r}, s.reviews...)
	s.persist(ctx)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"review_id": r.ID,
		"type":      r.Type,
		"target_id": r.TargetID,
	}).Info("review submitted")
	s.emit(ctx, kafka.TravelEvent{
		Type:     "review_submitted",
		UserID:   r.AuthorID,
		EntityID: r.ID,
		Amount:   r.Ratings.Overall,
		Attributes: map[string]string{
			"review_type": string(r.Type),
			"target_id":   r.TargetID,
		},
	})
	return r, nil
}

func (s *ReviewService) ReviewsForTarget(_ context.Context, t domain.ReviewType, targetID string, order SortOrder) []domain.Review {
	s.mu.Lock()
	out := s.forTarget(t, targetID)
	s.mu.Unlock()

	// The collection is newest first, so a stable sort keeps recency as the tie-break.
	switch order {
	case SortOldest:
		slices.Reverse(out)
	case SortHelpful:
		sort.SliceStable(out, func(i, j int) bool {
			return len(out[i].HelpfulVotes) > len(out[j].HelpfulVotes)
		})
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Ratings.Overall > out[j].Ratings.Overall
		})
	case SortLowest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Ratings.Overall < out[j].Ratings.Overall
		})
	}
	return out
}

// VoteHelpful toggles userID's vote in the given direction and clears any
// vote in the other. It reports false for an unknown review or empty user.
func (s *ReviewService) VoteHelpful(ctx context.Context, reviewID, userID string, helpful bool) (domain.Review, bool) {
	if userID == "" {
		return domain.Review{}, false
	}

	s.mu.Lock()
	i := s.index(reviewID)
	if i < 0 {
		s.mu.Unlock()
		return domain.Review{}, false
	}
	r := &s.reviews[i]
	same, opposite := &r.HelpfulVotes, &r.NotHelpfulVotes
	if !helpful {
		same, opposite = opposite, same
	}
	if slices.Contains(*same, userID) {
		*same = remove(*same, userID)
	} else {
		*same = append(*same, userID)
		*opposite = remove(*opposite, userID)
	}
	updated := clone(*r)
	s.persist(ctx)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"review_id": reviewID,
		"user_id":   userID,
		"helpful":   len(updated.HelpfulVotes),
		"unhelpful": len(updated.NotHelpfulVotes),
	}).Debug("review vote recorded")
	return updated, true
}

// Respond attaches or replaces the response on a review. Hotel reviews are
// answered by the owning provider, every other kind by the reviewed person.
func (s *ReviewService) Respond(ctx context.Context, reviewID string, responder domain.User, text string) (domain.Review, error) {
	text = strings.TrimSpace(text)
	if responder.ID == "" {
		return domain.Review{}, fmt.Errorf("respond to review: %w", domain.ErrUnauthenticated)
	}
	if text == "" {
		return domain.Review{}, ValidationErrors{{Field: "text", Message: "text is required"}}
	}

	s.mu.Lock()
	i := s.index(reviewID)
	if i < 0 {
		s.mu.Unlock()
		return domain.Review{}, fmt.Errorf("review %q: %w", reviewID, domain.ErrNotFound)
	}
	if !canRespond(responder, s.reviews[i]) {
		s.mu.Unlock()
		return domain.Review{}, fmt.Errorf("respond to review %q: %w", reviewID, domain.ErrForbidden)
	}
	s.reviews[i].ProviderResponse = &domain.ProviderResponse{
		ResponderID: responder.ID,
		Text:        text,
		RespondedAt: s.now(),
	}
	updated := clone(s.reviews[i])
	s.persist(ctx)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"review_id": reviewID, "responder_id": responder.ID}).Info("review response added")
	s.emit(ctx, kafka.TravelEvent{Type: "review_responded", UserID: updated.AuthorID, EntityID: reviewID})
	return updated, nil
}

func canRespond(u domain.User, r domain.Review) bool {
	if r.Type == domain.ReviewHotel {
		return u.Owns(r.TargetID)
	}
	return u.ID == r.TargetID
}

// forTarget must be called with mu held. It returns copies.
func (s *ReviewService) forTarget(t domain.ReviewType, targetID string) []domain.Review {
	out := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if r.Type == t && r.TargetID == targetID {
			out = append(out, clone(r))
		}
	}
	return out
}

func (s *ReviewService) index(id string) int {
	return slices.IndexFunc(s.reviews, func(r domain.Review) bool { return r.ID == id })
}

func (s *ReviewService) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyReviews, s.reviews); err != nil {
		s.log.WithError(err).Warn("failed to persist reviews")
	}
}

func (s *ReviewService) emit(ctx context.Context, event kafka.TravelEvent) {
	metrics.RecordEvent(event.Type)
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.log.WithError(err).WithField("event", event.Type).Warn("failed to publish event")
	}
}

func remove(set []string, v string) []string {
	return slices.DeleteFunc(set, func(x string) bool { return x == v })
}

// clone detaches the vote sets so callers cannot mutate stored reviews.
func clone(r domain.Review) domain.Review {
	r.HelpfulVotes = append([]string{}, r.HelpfulVotes...)
	r.NotHelpfulVotes = append([]string{}, r.NotHelpfulVotes...)
	if r.ProviderResponse != nil {
		resp := *r.ProviderResponse
		r.ProviderResponse = &resp
	}
	return r
}

var _ ReviewUseCase = (*ReviewService)(nil)
