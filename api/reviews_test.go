package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/service/review"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var traveler = domain.User{ID: "u1", Name: "Asha", Role: domain.RoleTraveler}

func TestReviewHandler_submit(t *testing.T) {
	mockService := &MockReviewUseCase{}
	mockStore := &MockStateStore{}
	handler := NewReviewHandler(mockService, mockStore)
	c, w := newTestContext("POST", "/api/v1/reviews", gin.H{
		"type":     "hotel",
		"targetId": "hotel-1",
		"ratings":  gin.H{"overall": 4, "hotel": gin.H{"cleanliness": 5}},
		"title":    "Lovely",
		"comment":  "Great stay",
	})
	mockStore.On("CurrentUser", c.Request.Context()).Return(traveler, true)
	mockService.On("Submit", c.Request.Context(), mock.MatchedBy(func(s review.Submission) bool {
		return s.AuthorID == "u1" && s.AuthorName == "Asha" &&
			s.Type == domain.ReviewHotel && s.Ratings.Hotel != nil && *s.Ratings.Hotel.Cleanliness == 5
	})).Return(domain.Review{ID: "r1", TargetID: "hotel-1"}, nil)

	handler.submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"r1"`)
	mockService.AssertExpectations(t)
}

func TestReviewHandler_submitIgnoresAuthorInBody(t *testing.T) {
	mockService := &MockReviewUseCase{}
	mockStore := &MockStateStore{}
	handler := NewReviewHandler(mockService, mockStore)
	c, _ := newTestContext("POST", "/api/v1/reviews", gin.H{"type": "buddy", "targetId": "buddy-1", "AuthorID": "someone-else"})
	mockStore.On("CurrentUser", mock.Anything).Return(traveler, true)
	mockService.On("Submit", mock.Anything, mock.MatchedBy(func(s review.Submission) bool {
		return s.AuthorID == "u1"
	})).Return(domain.Review{ID: "r1"}, nil)

	handler.submit(c)

	mockService.AssertExpectations(t)
}

func TestReviewHandler_submitErrors(t *testing.T) {
	validation := review.ValidationErrors{{Field: "title", Message: "title is required"}}
	tests := []struct {
		name   string
		err    error
		code   int
		fields bool
	}{
		{"validation", validation, http.StatusUnprocessableEntity, true},
		{"unknown target", domain.ErrInvalidTarget, http.StatusUnprocessableEntity, false},
		{"storage", errors.New("disk full"), http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockReviewUseCase{}
			mockStore := &MockStateStore{}
			handler := NewReviewHandler(mockService, mockStore)
			c, w := newTestContext("POST", "/api/v1/reviews", gin.H{"type": "hotel", "targetId": "hotel-1"})
			mockStore.On("CurrentUser", mock.Anything).Return(traveler, true)
			mockService.On("Submit", mock.Anything, mock.Anything).Return(domain.Review{}, tt.err)

			handler.submit(c)

			assert.Equal(t, tt.code, w.Code)
			if tt.fields {
				assert.Contains(t, w.Body.String(), `"fields"`)
				assert.Contains(t, w.Body.String(), "title is required")
			} else {
				assert.NotContains(t, w.Body.String(), `"fields"`)
			}
		})
	}
}

func TestReviewHandler_submitRequiresUser(t *testing.T) {
	mockService := &MockReviewUseCase{}
	mockStore := &MockStateStore{}
	handler := NewReviewHandler(mockService, mockStore)
	c, w := newTestContext("POST", "/api/v1/reviews", gin.H{"type": "hotel", "targetId": "hotel-1"})
	mockStore.On("CurrentUser", mock.Anything).Return(domain.User{}, false)

	handler.submit(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestReviewHandler_list(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService, &MockStateStore{})
	c, w := newTestContext("GET", "/api/v1/reviews/hotel/hotel-1?sort=helpful", nil)
	c.Params = gin.Params{{Key: "type", Value: "hotel"}, {Key: "targetId", Value: "hotel-1"}}
	mockService.On("ReviewsForTarget", c.Request.Context(), domain.ReviewHotel, "hotel-1", review.SortHelpful).
		Return([]domain.Review{{ID: "r2"}, {ID: "r1"}})

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestReviewHandler_listDefaultsToNewest(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService, &MockStateStore{})
	c, _ := newTestContext("GET", "/api/v1/reviews/driver/driver-1", nil)
	c.Params = gin.Params{{Key: "type", Value: "driver"}, {Key: "targetId", Value: "driver-1"}}
	mockService.On("ReviewsForTarget", mock.Anything, domain.ReviewDriver, "driver-1", review.SortNewest).
		Return([]domain.Review{})

	handler.list(c)

	mockService.AssertExpectations(t)
}

func TestReviewHandler_unknownType(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService, &MockStateStore{})
	c, w := newTestContext("GET", "/api/v1/reviews/train/t-1/summary", nil)
	c.Params = gin.Params{{Key: "type", Value: "train"}, {Key: "targetId", Value: "t-1"}}

	handler.summary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewHandler_summary(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService, &MockStateStore{})
	c, w := newTestContext("GET", "/api/v1/reviews/buddy/buddy-1/summary", nil)
	c.Params = gin.Params{{Key: "type", Value: "buddy"}, {Key: "targetId", Value: "buddy-1"}}
	mockService.On("Summary", c.Request.Context(), domain.ReviewBuddy, "buddy-1").Return(review.Summary{
		Averages:     review.Averages{Count: 2, Overall: 4.5, Categories: map[string]review.CategoryAverage{}},
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 5: 1},
		HelpfulVotes: 1,
	})

	handler.summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"overall":4.5`)
	assert.Contains(t, w.Body.String(), `"helpfulVotes":1`)
}

func TestReviewHandler_vote(t *testing.T) {
	tests := []struct {
		name  string
		found bool
		code  int
	}{
		{"toggled", true, http.StatusOK},
		{"unknown review", false, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockReviewUseCase{}
			mockStore := &MockStateStore{}
			handler := NewReviewHandler(mockService, mockStore)
			c, w := newTestContext("POST", "/api/v1/reviews/r1/vote", gin.H{"helpful": false})
			c.Params = gin.Params{{Key: "id", Value: "r1"}}
			mockStore.On("CurrentUser", mock.Anything).Return(traveler, true)
			mockService.On("VoteHelpful", c.Request.Context(), "r1", "u1", false).
				Return(domain.Review{ID: "r1", NotHelpfulVotes: []string{"u1"}}, tt.found)

			handler.vote(c)

			assert.Equal(t, tt.code, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestReviewHandler_voteRequiresDirection(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService, &MockStateStore{})
	c, w := newTestContext("POST", "/api/v1/reviews/r1/vote", gin.H{})
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	handler.vote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_respond(t *testing.T) {
	provider := domain.User{ID: "p1", Role: domain.RoleProvider, OwnedHotels: []string{"hotel-1"}}
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"owner", nil, http.StatusOK},
		{"not owner", domain.ErrForbidden, http.StatusForbidden},
		{"missing review", domain.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockReviewUseCase{}
			mockStore := &MockStateStore{}
			handler := NewReviewHandler(mockService, mockStore)
			c, w := newTestContext("POST", "/api/v1/reviews/r1/response", gin.H{"text": "Thanks!"})
			c.Params = gin.Params{{Key: "id", Value: "r1"}}
			mockStore.On("CurrentUser", mock.Anything).Return(provider, true)
			mockService.On("Respond", c.Request.Context(), "r1", provider, "Thanks!").Return(domain.Review{ID: "r1"}, tt.err)

			handler.respond(c)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}
