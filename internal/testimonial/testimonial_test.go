package testimonial

import (
	"testing"
	"time"
)

func TestPrePersistDefaultsStatus(t *testing.T) {
	tm := &Testimonial{Name: "Asha", Title: "Buyer", Text: "Great service", Rating: "5"}
	now := time.Now().UTC()
	tm.prePersist(now)

	if tm.ID.IsZero() {
		t.Error("expected id to be assigned")
	}
	if tm.Status != StatusPending {
		t.Errorf("status = %q, want %q", tm.Status, StatusPending)
	}
	if !tm.CreatedAt.Equal(now) {
		t.Errorf("createdAt = %v, want %v", tm.CreatedAt, now)
	}
}

func TestPrePersistKeepsExplicitStatus(t *testing.T) {
	tm := &Testimonial{Status: StatusApproved}
	tm.prePersist(time.Now().UTC())

	if tm.Status != StatusApproved {
		t.Errorf("status = %q, want %q", tm.Status, StatusApproved)
	}
}

func TestUpdateSetEmptyWhenNoFields(t *testing.T) {
	// A field-less update must not reach Mongo as an empty $set;
	// Repository.Update falls back to a plain fetch in that case.
	if m := (Update{}).set(); len(m) != 0 {
		t.Errorf("set() = %v, want empty document", m)
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusDeclined, true},
		{"rejected", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.status); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
