package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/domain"
	portsmocks "github.com/renato0307/freshcart/internal/ports/mocks"
)

func validAddress() domain.AddressDetails {
	return domain.AddressDetails{
		City:    "Bangalore",
		Line1:   " 42, Lake View Apartments ",
		Line2:   "16th Main, BTM Layout",
		Pincode: "560076",
		State:   "Karnataka",
		Tag:     "Home",
	}
}

func TestSaveAddress(t *testing.T) {
	store := NewSessionStore(nil)
	service := NewOnboardingService(store, portsmocks.NewMockSampleCatalog(t))

	require.NoError(t, service.SaveAddress(validAddress()))

	snap := store.Snapshot()
	require.NotNil(t, snap.Address)
	assert.Equal(t, "42, Lake View Apartments", snap.Address.Line1)
	assert.True(t, snap.Steps[domain.StepAddress].Completed)
	assert.Equal(t, 3, snap.CurrentStep)
}

func TestSaveAddress_Invalid(t *testing.T) {
	store := NewSessionStore(nil)
	service := NewOnboardingService(store, portsmocks.NewMockSampleCatalog(t))
	addr := validAddress()
	addr.Pincode = "12"

	assert.ErrorIs(t, service.SaveAddress(addr), domain.ErrInvalidAddress)
	assert.Nil(t, store.Snapshot().Address)
}

func TestSavePreferences(t *testing.T) {
	store := NewSessionStore(nil)
	service := NewOnboardingService(store, portsmocks.NewMockSampleCatalog(t))

	prefs := domain.Preferences{Household: []string{"Family with kids"}, Diet: "Eggetarian", ShopTime: "Evening"}
	require.NoError(t, service.SavePreferences(prefs))
	assert.Equal(t, prefs, store.Snapshot().Preferences)

	assert.ErrorIs(t, service.SavePreferences(domain.Preferences{Diet: "Keto"}), domain.ErrInvalidPreferences)

	service.SkipPreferences()
	assert.True(t, store.Snapshot().Preferences.IsEmpty())
}

func TestToggleSample(t *testing.T) {
	catalog := portsmocks.NewMockSampleCatalog(t)
	store := NewSessionStore(nil)
	service := NewOnboardingService(store, catalog)
	milk := &domain.Sample{ID: 1, Name: "A2 Cow Milk"}

	catalog.EXPECT().GetSample(mock.Anything, 1).Return(milk, nil).Twice()

	selected, err := service.ToggleSample(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = service.ToggleSample(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, selected)
	assert.Empty(t, store.SelectedSamples())

	selected, err = service.ToggleSample(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, selected)
	assert.Equal(t, []domain.Sample{*milk}, store.SelectedSamples())
}

func TestToggleSample_ConcurrentTogglesKeepOneEntry(t *testing.T) {
	catalog := portsmocks.NewMockSampleCatalog(t)
	store := NewSessionStore(nil)
	service := NewOnboardingService(store, catalog)
	milk := &domain.Sample{ID: 1, Name: "A2 Cow Milk"}

	catalog.EXPECT().GetSample(mock.Anything, 1).Return(milk, nil)

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ToggleSample(context.Background(), 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, []domain.Sample{*milk}, store.SelectedSamples())
}

func TestToggleSample_NotFound(t *testing.T) {
	catalog := portsmocks.NewMockSampleCatalog(t)
	service := NewOnboardingService(NewSessionStore(nil), catalog)

	catalog.EXPECT().GetSample(mock.Anything, 42).Return(nil, fmt.Errorf("%w: 42", domain.ErrSampleNotFound))

	_, err := service.ToggleSample(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrSampleNotFound)
}

func TestSamples(t *testing.T) {
	catalog := portsmocks.NewMockSampleCatalog(t)
	service := NewOnboardingService(NewSessionStore(nil), catalog)
	samples := []domain.Sample{{ID: 1, Name: "A2 Cow Milk"}, {ID: 2, Name: "Cookie Hamper"}}

	catalog.EXPECT().ListSamples(mock.Anything).Return(samples, nil)

	got, err := service.Samples(context.Background())

	require.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestFinishSamplesAndProgress(t *testing.T) {
	store := NewSessionStore(nil)
	service := NewOnboardingService(store, portsmocks.NewMockSampleCatalog(t))
	require.NoError(t, store.SetLocation(domain.DefaultLocation()))
	require.NoError(t, store.CompleteStep(domain.StepLocation))

	progress := service.Progress()
	assert.Equal(t, 1, progress.Completed)
	assert.Equal(t, 4, progress.Total)
	assert.Equal(t, domain.SymbolCompleted, progress.Symbol(progress.Steps[domain.StepLocation]))
	assert.Equal(t, domain.SymbolCurrent, progress.Symbol(progress.Steps[domain.StepAddress]))
	assert.Equal(t, domain.SymbolPending, progress.Symbol(progress.Steps[domain.StepLogin]))

	require.NoError(t, service.FinishSamples())

	progress = service.Progress()
	assert.True(t, progress.OnboardingComplete)
	assert.Equal(t, 2, progress.Completed)
}
