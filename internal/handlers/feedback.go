package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"feedback-collector/internal/middleware"
	"feedback-collector/internal/models"
	"feedback-collector/internal/notify"
	"feedback-collector/internal/repository"
	"feedback-collector/internal/stats"

	"github.com/google/uuid"
)

const (
	stepTwoPage  = "/feedback2.html"
	thankYouPage = "/thankyou.html"
	errorPage    = "/error.html"
)

type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	Stats(ctx context.Context) (stats.Result, error)
}

type PendingStore interface {
	Save(ctx context.Context, pending *models.PendingSubmission) error
	Find(ctx context.Context, token string) (*models.PendingSubmission, error)
	Delete(ctx context.Context, token string) error
}

type FeedbackHandler struct {
	feedbackRepo FeedbackStore
	pendingRepo  PendingStore
	sessions     *middleware.Sessions
	notifier     notify.Notifier
	ratings      RatingPolicy
}

func NewFeedbackHandler(
	feedbackRepo FeedbackStore,
	pendingRepo PendingStore,
	sessions *middleware.Sessions,
	notifier notify.Notifier,
	ratings RatingPolicy,
) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
		pendingRepo:  pendingRepo,
		sessions:     sessions,
		notifier:     notifier,
		ratings:      ratings,
	}
}

// --- POST /submit-part1 ---

func (h *FeedbackHandler) SubmitStepOne(w http.ResponseWriter, r *http.Request) {
	// Step one never rejects input; fields that failed to decode stay empty
	if err := r.ParseForm(); err != nil {
		log.Printf("Malformed step one form, keeping decodable fields: %v", err)
	}

	// Reuse the current session so a repeated step one overwrites its data
	token := middleware.GetSessionID(r.Context())
	if token == "" {
		token = uuid.New().String()
	}

	pending := &models.PendingSubmission{
		Token:       token,
		Name:        r.PostFormValue("name"),
		EmpID:       r.PostFormValue("empid"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("pno"),
		Designation: r.PostFormValue("desig"),
		ExpiresAt:   time.Now().Add(h.sessions.TTL()),
	}
	if err := h.pendingRepo.Save(r.Context(), pending); err != nil {
		log.Printf("Error saving pending submission: %v", err)
		writeInternalError(w)
		return
	}

	if err := h.sessions.Issue(w, token); err != nil {
		log.Printf("Error issuing session cookie: %v", err)
		writeInternalError(w)
		return
	}

	http.Redirect(w, r, stepTwoPage, http.StatusFound)
}

// --- POST /submit-part2 ---

func (h *FeedbackHandler) SubmitStepTwo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	token := middleware.GetSessionID(r.Context())

	// No session at all degrades to empty identity fields. A session whose
	// pending entry is gone was already finalized (or expired) and is
	// rejected like a duplicate.
	pending := &models.PendingSubmission{}
	if token != "" {
		found, err := h.pendingRepo.Find(r.Context(), token)
		if err != nil {
			log.Printf("Error loading pending submission: %v", err)
			writeInternalError(w)
			return
		}
		if found == nil {
			log.Printf("Stale session %s rejected", token)
			h.destroySession(w, r, token)
			http.Redirect(w, r, errorPage, http.StatusFound)
			return
		}
		pending = found
	}

	feedback := &models.Feedback{
		Name:          pending.Name,
		EmpID:         pending.EmpID,
		Email:         pending.Email,
		Phone:         pending.Phone,
		Designation:   pending.Designation,
		Punctuality:   parseRating(r.PostFormValue("punctuality")),
		Clarification: parseRating(r.PostFormValue("clarification")),
		Explanation:   parseRating(r.PostFormValue("explanation")),
		Communication: parseRating(r.PostFormValue("communication")),
		Rating:        parseRating(r.PostFormValue("feedback")),
		Other:         r.PostFormValue("other"),
	}

	ratings := feedback.Ratings()
	for _, d := range stats.Dimensions {
		if err := h.ratings.check(d, ratings[d]); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	err := h.feedbackRepo.Create(r.Context(), feedback)
	switch {
	case errors.Is(err, repository.ErrDuplicateEmployee):
		log.Printf("Duplicate feedback rejected for employee %q", feedback.EmpID)
		h.destroySession(w, r, token)
		http.Redirect(w, r, errorPage, http.StatusFound)
		return
	case err != nil:
		log.Printf("Error saving feedback: %v", err)
		writeInternalError(w)
		return
	}

	h.destroySession(w, r, token)

	// Fire the confirmation in a background goroutine (non-blocking)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Panic in feedback notification for %q: %v", feedback.EmpID, rec)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.notifier.Notify(ctx, feedback); err != nil {
			log.Printf("Error sending feedback notification: %v", err)
		}
	}()

	http.Redirect(w, r, thankYouPage, http.StatusFound)
}

// --- GET /api/feedback-stats ---

func (h *FeedbackHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.feedbackRepo.Stats(r.Context())
	if err != nil {
		log.Printf("Error fetching feedback stats: %v", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *FeedbackHandler) destroySession(w http.ResponseWriter, r *http.Request, token string) {
	if token != "" {
		if err := h.pendingRepo.Delete(r.Context(), token); err != nil {
			// The TTL index reaps the entry eventually
			log.Printf("Error deleting pending submission: %v", err)
		}
	}
	h.sessions.Clear(w)
}
