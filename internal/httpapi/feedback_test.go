package httpapi

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/realtydesk/realty-api/internal/feedback"
)

type fakeFeedbackStore struct {
	entries []*feedback.Feedback
}

func (f *fakeFeedbackStore) Insert(_ context.Context, fb *feedback.Feedback) (*feedback.Feedback, error) {
	if fb.ID.IsZero() {
		fb.ID = primitive.NewObjectID()
	}
	if fb.Status == "" {
		fb.Status = feedback.StatusPending
	}
	f.entries = append(f.entries, fb)
	return fb, nil
}

func (f *fakeFeedbackStore) List(_ context.Context, onlyApproved bool) ([]*feedback.Feedback, error) {
	if !onlyApproved {
		return f.entries, nil
	}
	var approved []*feedback.Feedback
	for _, fb := range f.entries {
		if fb.Status == feedback.StatusApproved {
			approved = append(approved, fb)
		}
	}
	return approved, nil
}

func (f *fakeFeedbackStore) GetByID(_ context.Context, id primitive.ObjectID) (*feedback.Feedback, error) {
	for _, fb := range f.entries {
		if fb.ID == id {
			return fb, nil
		}
	}
	return nil, feedback.ErrNotFound
}

func (f *fakeFeedbackStore) Update(ctx context.Context, id primitive.ObjectID, u feedback.Update) (*feedback.Feedback, error) {
	fb, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Status != nil {
		fb.Status = *u.Status
	}
	return fb, nil
}

func (f *fakeFeedbackStore) SetStatus(ctx context.Context, id primitive.ObjectID, status feedback.Status) (*feedback.Feedback, error) {
	fb, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fb.Status = status
	return fb, nil
}

func (f *fakeFeedbackStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for n, fb := range f.entries {
		if fb.ID == id {
			f.entries = append(f.entries[:n], f.entries[n+1:]...)
			return nil
		}
	}
	return feedback.ErrNotFound
}

func seededFeedback() *fakeFeedbackStore {
	return &fakeFeedbackStore{entries: []*feedback.Feedback{
		{ID: primitive.NewObjectID(), Name: "A", Status: feedback.StatusApproved},
		{ID: primitive.NewObjectID(), Name: "B", Status: feedback.StatusPending},
		{ID: primitive.NewObjectID(), Name: "C", Status: feedback.StatusDeclined},
	}}
}

func TestFeedbackPublicListOnlyApproved(t *testing.T) {
	s := testServer(t, Stores{Feedback: seededFeedback()})

	w := doJSON(t, s, http.MethodGet, "/api/feedback", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if env := decodeEnvelope(t, w); env.Count == nil || *env.Count != 1 {
		t.Errorf("public count = %v, want 1", env.Count)
	}

	w = doJSON(t, s, http.MethodGet, "/api/feedback/admin/all", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("admin status = %d, want %d", w.Code, http.StatusOK)
	}
	if env := decodeEnvelope(t, w); env.Count == nil || *env.Count != 3 {
		t.Errorf("admin count = %v, want 3", env.Count)
	}
}

func TestFeedbackStatusUpdate(t *testing.T) {
	fake := seededFeedback()
	pending := fake.entries[1]
	s := testServer(t, Stores{Feedback: fake})

	w := doJSON(t, s, http.MethodPut, "/api/feedback/"+pending.ID.Hex()+"/status", map[string]any{
		"status": "approved",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if pending.Status != feedback.StatusApproved {
		t.Errorf("feedback status = %q, want approved", pending.Status)
	}

	w = doJSON(t, s, http.MethodPut, "/api/feedback/"+pending.ID.Hex()+"/status", map[string]any{
		"status": "archived",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad enum status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env := decodeEnvelope(t, w); env.Message != "Status must be pending, approved, or declined" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestCreateFeedbackValidation(t *testing.T) {
	s := testServer(t, Stores{Feedback: &fakeFeedbackStore{}})

	w := doJSON(t, s, http.MethodPost, "/api/feedback", map[string]any{
		"email":  "bad",
		"rating": 9,
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	env := decodeEnvelope(t, w)
	if len(env.Errors) != 4 {
		t.Errorf("errors = %v, want name, email, rating, and message failures", env.Errors)
	}
}
