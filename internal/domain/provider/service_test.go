package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
)

type fakeRepo struct {
	byUser map[uuid.UUID]*provider.Provider
	slugs  map[string]uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byUser: map[uuid.UUID]*provider.Provider{},
		slugs:  map[string]uuid.UUID{},
	}
}

func (f *fakeRepo) Create(_ context.Context, p *provider.Provider) error {
	cp := *p
	f.byUser[p.UserID] = &cp
	if p.Slug.Valid {
		f.slugs[p.Slug.String] = p.ID
	}
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*provider.Provider, error) {
	for _, p := range f.byUser {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, provider.ErrProviderNotFound
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*provider.Provider, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, provider.ErrProviderNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*provider.Provider, error) {
	id, ok := f.slugs[slug]
	if !ok {
		return nil, provider.ErrProviderNotFound
	}
	return f.GetByID(context.Background(), id)
}

func (f *fakeRepo) Update(_ context.Context, p *provider.Provider) error {
	cp := *p
	f.byUser[p.UserID] = &cp
	if p.Slug.Valid {
		f.slugs[p.Slug.String] = p.ID
	}
	return nil
}

func (f *fakeRepo) UpdateApproval(ctx context.Context, p *provider.Provider) error {
	return f.Update(ctx, p)
}

func (f *fakeRepo) List(_ context.Context, _ provider.ListFilter) ([]provider.Provider, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) ListEmergency(_ context.Context, _ string) ([]provider.Provider, error) {
	return nil, nil
}

func (f *fakeRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	id, ok := f.slugs[slug]
	return ok && id != excludeID, nil
}

type fakeHours struct {
	records map[uuid.UUID]*provider.BusinessHours
}

func (f *fakeHours) Upsert(_ context.Context, h *provider.BusinessHours) error {
	f.records[h.ProviderID] = h
	return nil
}

func (f *fakeHours) GetByProviderID(_ context.Context, providerID uuid.UUID) (*provider.BusinessHours, error) {
	return f.records[providerID], nil
}

func (f *fakeHours) Exists(_ context.Context, providerID uuid.UUID) (bool, error) {
	_, ok := f.records[providerID]
	return ok, nil
}

type fakeAreas struct {
	records map[uuid.UUID][]provider.ServiceArea
}

func (f *fakeAreas) Create(_ context.Context, a *provider.ServiceArea) error {
	f.records[a.ProviderID] = append(f.records[a.ProviderID], *a)
	return nil
}

func (f *fakeAreas) ListByProviderID(_ context.Context, providerID uuid.UUID) ([]provider.ServiceArea, error) {
	return f.records[providerID], nil
}

func (f *fakeAreas) Delete(_ context.Context, id, providerID uuid.UUID) error {
	areas := f.records[providerID]
	for i, a := range areas {
		if a.ID == id {
			f.records[providerID] = append(areas[:i], areas[i+1:]...)
			return nil
		}
	}
	return provider.ErrServiceAreaNotFound
}

func (f *fakeAreas) Count(_ context.Context, providerID uuid.UUID) (int, error) {
	return len(f.records[providerID]), nil
}

func newTestService() (*provider.Service, *fakeRepo) {
	repo := newFakeRepo()
	svc := provider.NewService(
		repo,
		&fakeHours{records: map[uuid.UUID]*provider.BusinessHours{}},
		&fakeAreas{records: map[uuid.UUID][]provider.ServiceArea{}},
	)
	return svc, repo
}

func TestServiceCreate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	resp, err := svc.Create(ctx, userID, &provider.CreateRequest{Name: "Ace Plumbing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Name != "Ace Plumbing" {
		t.Errorf("name = %q", resp.Name)
	}
	if resp.Slug != "ace-plumbing" {
		t.Errorf("slug = %q, want ace-plumbing", resp.Slug)
	}
	if !resp.IsDraft || resp.ApprovalStatus != provider.StatusDraft {
		t.Errorf("new profile not a draft: draft=%v status=%s", resp.IsDraft, resp.ApprovalStatus)
	}
	if resp.Wizard.CurrentStep != provider.StepBasicInfo {
		t.Errorf("wizard step = %s, want basic_info", resp.Wizard.CurrentStep)
	}

	if _, err := svc.Create(ctx, userID, &provider.CreateRequest{Name: "Second"}); err != provider.ErrProfileAlreadyExists {
		t.Errorf("second create err = %v, want ErrProfileAlreadyExists", err)
	}
}

func TestServiceCreateSlugCollision(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, uuid.New(), &provider.CreateRequest{Name: "Ace Plumbing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(ctx, uuid.New(), &provider.CreateRequest{Name: "Ace Plumbing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Slug == second.Slug {
		t.Errorf("both profiles got slug %q", first.Slug)
	}
	if second.Slug != "ace-plumbing-2" {
		t.Errorf("second slug = %q, want ace-plumbing-2", second.Slug)
	}
}

func TestServiceSubmitForReview(t *testing.T) {
	ctx := context.Background()

	t.Run("incomplete profile is rejected with the percentage", func(t *testing.T) {
		svc, _ := newTestService()
		userID := uuid.New()
		if _, err := svc.Create(ctx, userID, &provider.CreateRequest{Name: "Ace"}); err != nil {
			t.Fatalf("Create: %v", err)
		}

		_, err := svc.SubmitForReview(ctx, userID)
		var incomplete *provider.IncompleteProfileError
		if !errors.As(err, &incomplete) {
			t.Fatalf("err = %v, want IncompleteProfileError", err)
		}
		if incomplete.Percentage >= provider.SubmitThreshold {
			t.Errorf("percentage = %v, want below %v", incomplete.Percentage, provider.SubmitThreshold)
		}
		if incomplete.Threshold != provider.SubmitThreshold {
			t.Errorf("threshold = %v", incomplete.Threshold)
		}
	})

	t.Run("profile at threshold is approved immediately", func(t *testing.T) {
		svc, repo := newTestService()
		userID := uuid.New()
		if _, err := svc.Create(ctx, userID, &provider.CreateRequest{Name: "Ace Plumbing"}); err != nil {
			t.Fatalf("Create: %v", err)
		}

		tagline := "Fast and friendly"
		desc := "Residential plumbing repairs"
		cat := uuid.New().String()
		skills := "pipes, drains"
		email := "ace@example.com"
		phone := "555-0100"
		city := "Austin"
		state := "TX"
		if _, err := svc.Update(ctx, userID, &provider.UpdateRequest{
			Tagline: &tagline, Description: &desc, CategoryID: &cat, Skills: &skills,
			Email: &email, Phone: &phone, City: &city, State: &state,
		}); err != nil {
			t.Fatalf("Update: %v", err)
		}

		resp, err := svc.SubmitForReview(ctx, userID)
		if err != nil {
			t.Fatalf("SubmitForReview: %v", err)
		}
		if resp.ApprovalStatus != provider.StatusApproved {
			t.Errorf("status = %s, want approved", resp.ApprovalStatus)
		}

		stored, _ := repo.GetByUserID(ctx, userID)
		if stored.IsDraft {
			t.Error("profile still a draft after approval")
		}
		if !stored.SubmittedForReviewAt.Valid || !stored.ApprovedAt.Valid {
			t.Fatal("lifecycle timestamps not set")
		}
		if !stored.SubmittedForReviewAt.Time.Equal(stored.ApprovedAt.Time) {
			t.Error("submitted and approved timestamps differ")
		}

		if _, err := svc.SubmitForReview(ctx, userID); err != provider.ErrAlreadySubmitted {
			t.Errorf("resubmit err = %v, want ErrAlreadySubmitted", err)
		}
	})
}

func TestServiceWizardSteps(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	userID := uuid.New()
	if _, err := svc.Create(ctx, userID, &provider.CreateRequest{Name: "Ace"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	resp, err := svc.ApplyBasicInfoStep(ctx, userID, provider.BasicInfoInput{
		Name:        "Ace Plumbing",
		Description: "Residential plumbing",
		CategoryID:  uuid.New().String(),
	})
	if err != nil {
		t.Fatalf("ApplyBasicInfoStep: %v", err)
	}
	if resp.NextStep != provider.StepContact {
		t.Errorf("next = %s, want contact", resp.NextStep)
	}
	if resp.Completeness == nil || resp.Completeness.Filled == 0 {
		t.Errorf("completeness not recomputed: %+v", resp.Completeness)
	}

	mine, err := svc.GetMine(ctx, userID)
	if err != nil {
		t.Fatalf("GetMine: %v", err)
	}
	if mine.Wizard.CurrentStep != provider.StepContact {
		t.Errorf("derived step = %s, want contact", mine.Wizard.CurrentStep)
	}

	mediaResp, err := svc.ApplyMediaStep(ctx, userID)
	if err != nil {
		t.Fatalf("ApplyMediaStep: %v", err)
	}
	if mediaResp.NextStep != provider.StepEmergency {
		t.Errorf("media next = %s, want emergency", mediaResp.NextStep)
	}
	if mediaResp.Completeness == nil {
		t.Error("completeness missing from media step response")
	}
}
