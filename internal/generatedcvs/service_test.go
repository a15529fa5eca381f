package generatedcvs

import (
	"context"
	"strings"
	"testing"
	"time"

	"cvision-backend/cv/export"
	"cvision-backend/internal/experiences"
	"cvision-backend/internal/profiles"
	"cvision-backend/internal/templates"
)

const templateATSMinimal = "11111111-1111-1111-1111-111111111111"

type fakeStore struct {
	keys []string
	err  error
}

func (f *fakeStore) Put(ctx context.Context, key, content string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "/data/" + key, nil
}

func newTestService(t *testing.T) (*Service, profiles.Profile, *fakeStore) {
	t.Helper()

	profileRepo := profiles.NewMemoryRepo()
	experienceRepo := experiences.NewMemoryRepo()
	store := &fakeStore{}

	svc := &Service{
		Repo:        NewMemoryRepo(),
		Profiles:    profileRepo,
		Experiences: experienceRepo,
		Templates:   templates.NewMemoryRepo(),
		Exporter:    &export.Exporter{Store: store},
	}

	profileSvc := &profiles.Service{Repo: profileRepo, Experiences: &experiences.Service{Repo: experienceRepo, Profiles: profileRepo}}
	profile, err := profileSvc.Create(context.Background(), profiles.Input{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Summary:    "Backend engineer working with Python and Go.",
		Skills:     []string{"Python", "Go"},
		TargetRole: "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	expSvc := &experiences.Service{Repo: experienceRepo, Profiles: profileRepo}
	if _, err := expSvc.Create(context.Background(), profile.ID, experiences.Input{
		JobTitle:    "Engineer",
		Company:     "Acme",
		StartDate:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: "Built data pipelines.",
	}); err != nil {
		t.Fatalf("create experience: %v", err)
	}

	return svc, profile, store
}

func TestGenerateRendersAndScores(t *testing.T) {
	svc, profile, _ := newTestService(t)

	cv, report, err := svc.Generate(context.Background(), GenerateInput{
		ProfileID:          profile.ID,
		TemplateID:         templateATSMinimal,
		TargetRole:         "Backend Engineer",
		JobDescriptionText: "Python SQL",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if cv.Title != "Backend Engineer CV" {
		t.Fatalf("title: got %q", cv.Title)
	}
	if cv.Language != "EN" {
		t.Fatalf("language: got %q, want default EN", cv.Language)
	}
	if !strings.Contains(cv.HTMLPreview, "Jane Doe") {
		t.Fatalf("preview missing name:\n%s", cv.HTMLPreview)
	}
	if !strings.Contains(cv.HTMLPreview, "Built data pipelines.") {
		t.Fatalf("preview missing experience:\n%s", cv.HTMLPreview)
	}

	// "python" appears in the rendered skills, "sql" does not.
	if report.KeywordMatch != 50 {
		t.Fatalf("keywordMatch: got %d, want 50", report.KeywordMatch)
	}
	if cv.AtsReportJSON == "" {
		t.Fatal("expected stored report JSON")
	}

	stored, storedReport, _, err := svc.Get(context.Background(), cv.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.HTMLPreview != cv.HTMLPreview {
		t.Fatal("stored preview differs from generated")
	}
	if storedReport.KeywordMatch != report.KeywordMatch {
		t.Fatalf("stored report keywordMatch: got %d, want %d", storedReport.KeywordMatch, report.KeywordMatch)
	}
}

func TestGenerateUnknownProfile(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Generate(context.Background(), GenerateInput{
		ProfileID:  "00000000-0000-0000-0000-000000000000",
		TemplateID: templateATSMinimal,
	})
	if err != ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGenerateUnknownTemplate(t *testing.T) {
	svc, profile, _ := newTestService(t)

	_, _, err := svc.Generate(context.Background(), GenerateInput{
		ProfileID:  profile.ID,
		TemplateID: "99999999-9999-9999-9999-999999999999",
	})
	if err != ErrTemplateNotFound {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestExportRecordsFile(t *testing.T) {
	svc, profile, store := newTestService(t)

	cv, _, err := svc.Generate(context.Background(), GenerateInput{
		ProfileID:  profile.ID,
		TemplateID: templateATSMinimal,
		TargetRole: "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	file, err := svc.Export(context.Background(), cv.ID, export.KindPDF)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if file.FileType != "PDF" {
		t.Fatalf("file type: got %q", file.FileType)
	}
	if len(store.keys) != 1 {
		t.Fatalf("stored objects: got %d, want 1", len(store.keys))
	}
	if !strings.HasPrefix(file.PublicURL, "/storage/") {
		t.Fatalf("public URL: got %q", file.PublicURL)
	}

	_, _, files, err := svc.Get(context.Background(), cv.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(files) != 1 || files[0].ID != file.ID {
		t.Fatalf("files: got %v", files)
	}
}

func TestCheckATSDoesNotPersist(t *testing.T) {
	svc, profile, _ := newTestService(t)

	cv, _, err := svc.Generate(context.Background(), GenerateInput{
		ProfileID:          profile.ID,
		TemplateID:         templateATSMinimal,
		TargetRole:         "Backend Engineer",
		JobDescriptionText: "Python",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	report, err := svc.CheckATS(context.Background(), cv.ID, "Kubernetes Terraform")
	if err != nil {
		t.Fatalf("CheckATS: %v", err)
	}
	if report.KeywordMatch != 0 {
		t.Fatalf("keywordMatch: got %d, want 0", report.KeywordMatch)
	}

	stored, storedReport, _, err := svc.Get(context.Background(), cv.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.AtsReportJSON == "" || storedReport.KeywordMatch != 100 {
		t.Fatalf("stored report changed: %+v", storedReport)
	}
}
