package experiences

import (
	"context"
	"testing"
	"time"

	"cvision-backend/internal/profiles"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	profileRepo := profiles.NewMemoryRepo()
	profileSvc := &profiles.Service{Repo: profileRepo}
	profile, err := profileSvc.Create(context.Background(), profiles.Input{FullName: "Jane Doe"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	return &Service{Repo: NewMemoryRepo(), Profiles: profileRepo}, profile.ID
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc, profileID := newTestService(t)

	cases := []struct {
		name string
		in   Input
	}{
		{"missing job title", Input{Company: "Acme", StartDate: time.Now()}},
		{"missing company", Input{JobTitle: "Dev", StartDate: time.Now()}},
		{"zero start date", Input{JobTitle: "Dev", Company: "Acme"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), profileID, tc.in); err != ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateUnknownProfile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), "missing", Input{
		JobTitle:  "Dev",
		Company:   "Acme",
		StartDate: time.Now(),
	})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAcceptsEndBeforeStart(t *testing.T) {
	svc, profileID := newTestService(t)

	end := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	exp, err := svc.Create(context.Background(), profileID, Input{
		JobTitle:  "Dev",
		Company:   "Acme",
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if exp.EndDate == nil || !exp.EndDate.Equal(end) {
		t.Fatalf("end date: got %v", exp.EndDate)
	}
}

func TestListForProfileSortsNewestStartFirst(t *testing.T) {
	svc, profileID := newTestService(t)

	dates := []time.Time{
		time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		if _, err := svc.Create(context.Background(), profileID, Input{
			JobTitle:  "Dev",
			Company:   "Acme",
			StartDate: d,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	listed, err := svc.ListForProfile(context.Background(), profileID)
	if err != nil {
		t.Fatalf("ListForProfile: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 experiences, got %d", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].StartDate.After(listed[i-1].StartDate) {
			t.Fatalf("not sorted newest first: %v", listed)
		}
	}
}

func TestUpdateUnknownExperience(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), "missing", Input{
		JobTitle:  "Dev",
		Company:   "Acme",
		StartDate: time.Now(),
	})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByProfileRemovesAllOwned(t *testing.T) {
	svc, profileID := newTestService(t)

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), profileID, Input{
			JobTitle:  "Dev",
			Company:   "Acme",
			StartDate: time.Date(2020+i, 1, 1, 0, 0, 0, 0, time.UTC),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := svc.DeleteByProfile(context.Background(), profileID); err != nil {
		t.Fatalf("DeleteByProfile: %v", err)
	}

	listed, err := svc.ListForProfile(context.Background(), profileID)
	if err != nil {
		t.Fatalf("ListForProfile: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no experiences, got %d", len(listed))
	}
}
