package services_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/renato0307/freshcart/internal/adapters/device"
	"github.com/renato0307/freshcart/internal/adapters/otp"
	"github.com/renato0307/freshcart/internal/adapters/storage"
	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/ports"
	"github.com/renato0307/freshcart/internal/services"
)

type featureClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *featureClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *featureClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type onboardingTestContext struct {
	auth       *services.AuthService
	catalog    ports.Catalog
	clock      *featureClock
	err        error
	location   *services.LocationService
	onboarding *services.OnboardingService
	resolution domain.Resolution
	simulator  *device.Simulator
	store      *services.SessionStore
}

func (c *onboardingTestContext) reset() {
	c.clock = &featureClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	c.err = nil
	c.resolution = domain.Resolution{}
	c.store = services.NewSessionStore(c.clock)
	c.auth = services.NewAuthService(c.store, otp.NewStaticGateway(0), c.clock)
	c.onboarding = services.NewOnboardingService(c.store, c.catalog)
	c.simulator = nil
	c.location = nil
}

func (c *onboardingTestContext) useScenario(s *device.Scenario) {
	c.simulator = device.NewSimulator(s, c.clock)
	serviceability := services.RadiusServiceability{
		Center:   domain.DefaultLocation().Coordinates(),
		RadiusKm: 25,
	}
	c.location = services.NewLocationService(c.store, c.simulator, c.simulator, c.simulator, c.simulator, serviceability, c.clock)
}

// Given steps

func (c *onboardingTestContext) theBuiltInDeviceScenario() error {
	c.useScenario(device.DefaultScenario())
	return nil
}

func (c *onboardingTestContext) theDeviceScenario(doc *godog.DocString) error {
	s, err := device.ParseScenario([]byte(doc.Content))
	if err != nil {
		return err
	}
	c.useScenario(s)
	return nil
}

// When steps

func (c *onboardingTestContext) theLocationScreenOpens() error {
	c.resolution = c.location.ResolveOnLoad(context.Background())
	return nil
}

func (c *onboardingTestContext) iUseMyCurrentLocation() error {
	c.resolution = c.location.ResolveCurrentLocation(context.Background())
	return nil
}

func (c *onboardingTestContext) iOpenTheAppSettings() error {
	return c.location.OpenSettings(context.Background())
}

func (c *onboardingTestContext) theAppReturnsToTheForeground() error {
	res, ran := c.location.ResumeOnForeground(context.Background())
	if !ran {
		return errors.New("foreground resume did not run a resolution")
	}
	c.resolution = res
	return nil
}

func (c *onboardingTestContext) iSearchFor(query string) error {
	c.resolution = c.location.ResolveFromSearch(context.Background(), query)
	return nil
}

func (c *onboardingTestContext) iDropTheMarkerAt(lat, lon float64) error {
	c.resolution = c.location.ResolveFromMarkerDrag(context.Background(), domain.Coordinates{Latitude: lat, Longitude: lon})
	return nil
}

func (c *onboardingTestContext) iConfirmTheLocation() error {
	return c.location.CommitLocationAndAdvance(context.Background())
}

func (c *onboardingTestContext) iSkipToTheDefaultLocation() error {
	return c.location.SkipToDefault(context.Background())
}

func (c *onboardingTestContext) iRequestAnOTPFor(phone string) error {
	_, c.err = c.auth.RequestOTP(context.Background(), phone)
	return nil
}

func (c *onboardingTestContext) iEnterTheOTP(code string) error {
	c.err = c.auth.VerifyOTP(context.Background(), code)
	return nil
}

func (c *onboardingTestContext) iAskToResendTheOTP() error {
	_, c.err = c.auth.ResendOTP(context.Background())
	return nil
}

func (c *onboardingTestContext) secondsPass(n int) error {
	c.clock.advance(time.Duration(n) * time.Second)
	return nil
}

func (c *onboardingTestContext) iSkipLogin() error {
	c.auth.SkipLogin()
	return nil
}

func (c *onboardingTestContext) iSaveTheAddress(line1, pincode, tag string) error {
	c.err = c.onboarding.SaveAddress(domain.AddressDetails{
		City:    "Bangalore",
		Line1:   line1,
		Line2:   "Lake View Road, BTM Layout",
		Pincode: pincode,
		State:   "Karnataka",
		Tag:     tag,
	})
	return nil
}

func (c *onboardingTestContext) iPickThePreferences(household, diet, shopTime string) error {
	return c.onboarding.SavePreferences(domain.Preferences{
		Diet:      diet,
		Household: []string{household},
		ShopTime:  shopTime,
	})
}

func (c *onboardingTestContext) iToggleTheSample(id int) error {
	_, err := c.onboarding.ToggleSample(context.Background(), id)
	return err
}

func (c *onboardingTestContext) iFinishChoosingSamples() error {
	return c.onboarding.FinishSamples()
}

// Then steps

func (c *onboardingTestContext) theResolutionIs(kind string) error {
	if got := c.resolution.Kind.String(); got != kind {
		return fmt.Errorf("expected resolution %q, got %q (reason: %v)", kind, got, c.resolution.Reason)
	}
	return nil
}

func (c *onboardingTestContext) theResolutionReasonIs(reason string) error {
	if c.resolution.Reason == nil {
		return fmt.Errorf("expected reason %q, got none", reason)
	}
	if !strings.Contains(c.resolution.Reason.Error(), reason) {
		return fmt.Errorf("expected reason %q, got %q", reason, c.resolution.Reason)
	}
	return nil
}

func (c *onboardingTestContext) theWorkflowIsAwaitingUserAction() error {
	if !c.location.AwaitingUserAction() {
		return errors.New("expected the workflow to await user action")
	}
	return nil
}

func (c *onboardingTestContext) theWorkflowIsNotAwaitingUserAction() error {
	if c.location.AwaitingUserAction() {
		return errors.New("expected the workflow not to await user action")
	}
	return nil
}

func (c *onboardingTestContext) sessionLocation() (domain.ResolvedLocation, error) {
	loc, ok := c.store.Location()
	if !ok {
		return domain.ResolvedLocation{}, errors.New("session has no location")
	}
	return loc, nil
}

func (c *onboardingTestContext) theSessionLocationAddressIs(address string) error {
	loc, err := c.sessionLocation()
	if err != nil {
		return err
	}
	if loc.Address != address {
		return fmt.Errorf("expected address %q, got %q", address, loc.Address)
	}
	return nil
}

func (c *onboardingTestContext) theSessionLocationCityIs(city string) error {
	loc, err := c.sessionLocation()
	if err != nil {
		return err
	}
	if loc.City != city {
		return fmt.Errorf("expected city %q, got %q", city, loc.City)
	}
	return nil
}

func (c *onboardingTestContext) theSessionLocationIsServiceable() error {
	loc, err := c.sessionLocation()
	if err != nil {
		return err
	}
	if !loc.IsServiceable {
		return fmt.Errorf("expected %q to be serviceable", loc.Address)
	}
	return nil
}

func (c *onboardingTestContext) theSessionLocationIsNotServiceable() error {
	loc, err := c.sessionLocation()
	if err != nil {
		return err
	}
	if loc.IsServiceable {
		return fmt.Errorf("expected %q not to be serviceable", loc.Address)
	}
	return nil
}

func (c *onboardingTestContext) theSessionHasNoLocation() error {
	if loc, ok := c.store.Location(); ok {
		return fmt.Errorf("expected no location, got %q", loc.Address)
	}
	return nil
}

func (c *onboardingTestContext) confirmingTheLocationFailsWith(msg string) error {
	err := c.location.CommitLocationAndAdvance(context.Background())
	if err == nil {
		return errors.New("expected confirming the location to fail")
	}
	if !strings.Contains(err.Error(), msg) {
		return fmt.Errorf("expected error %q, got %q", msg, err)
	}
	return nil
}

func (c *onboardingTestContext) theLocationStepIsCompleted() error {
	if !c.store.Steps()[domain.StepLocation].Completed {
		return errors.New("expected the location step to be completed")
	}
	return nil
}

func (c *onboardingTestContext) theLocationStepIsNotCompleted() error {
	if c.store.Steps()[domain.StepLocation].Completed {
		return errors.New("expected the location step not to be completed")
	}
	return nil
}

func (c *onboardingTestContext) iAmLoggedIn() error {
	if !c.store.IsLoggedIn() {
		return fmt.Errorf("expected to be logged in (last error: %v)", c.err)
	}
	return nil
}

func (c *onboardingTestContext) iAmNotLoggedIn() error {
	if c.store.IsLoggedIn() {
		return errors.New("expected not to be logged in")
	}
	return nil
}

func (c *onboardingTestContext) theLastErrorIs(msg string) error {
	if c.err == nil {
		return fmt.Errorf("expected error %q, got none", msg)
	}
	if !strings.Contains(c.err.Error(), msg) {
		return fmt.Errorf("expected error %q, got %q", msg, c.err)
	}
	return nil
}

func (c *onboardingTestContext) thereIsNoError() error {
	if c.err != nil {
		return fmt.Errorf("expected no error, got %q", c.err)
	}
	return nil
}

func (c *onboardingTestContext) samplesAreSelected(n int) error {
	if got := len(c.store.SelectedSamples()); got != n {
		return fmt.Errorf("expected %d selected samples, got %d", n, got)
	}
	return nil
}

func (c *onboardingTestContext) onboardingIsComplete() error {
	if !c.onboarding.Progress().OnboardingComplete {
		return errors.New("expected onboarding to be complete")
	}
	return nil
}

func (c *onboardingTestContext) stepsAreCompleted(completed, total int) error {
	progress := c.onboarding.Progress()
	if progress.Completed != completed || progress.Total != total {
		return fmt.Errorf("expected %d of %d steps, got %d of %d", completed, total, progress.Completed, progress.Total)
	}
	return nil
}

func initializeScenario(catalog ports.Catalog) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := &onboardingTestContext{catalog: catalog}

		ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		// Given steps
		ctx.Step(`^the built-in device scenario$`, tc.theBuiltInDeviceScenario)
		ctx.Step(`^the device scenario:$`, tc.theDeviceScenario)

		// When steps
		ctx.Step(`^the location screen opens$`, tc.theLocationScreenOpens)
		ctx.Step(`^I use my current location$`, tc.iUseMyCurrentLocation)
		ctx.Step(`^I open the app settings$`, tc.iOpenTheAppSettings)
		ctx.Step(`^the app returns to the foreground$`, tc.theAppReturnsToTheForeground)
		ctx.Step(`^I search for "([^"]*)"$`, tc.iSearchFor)
		ctx.Step(`^I drop the marker at (-?[\d.]+), (-?[\d.]+)$`, tc.iDropTheMarkerAt)
		ctx.Step(`^I confirm the location$`, tc.iConfirmTheLocation)
		ctx.Step(`^I skip to the default location$`, tc.iSkipToTheDefaultLocation)
		ctx.Step(`^I request an OTP for "([^"]*)"$`, tc.iRequestAnOTPFor)
		ctx.Step(`^I enter the OTP "([^"]*)"$`, tc.iEnterTheOTP)
		ctx.Step(`^I ask to resend the OTP$`, tc.iAskToResendTheOTP)
		ctx.Step(`^(\d+) seconds pass$`, tc.secondsPass)
		ctx.Step(`^I skip login$`, tc.iSkipLogin)
		ctx.Step(`^I save the address "([^"]*)" with pincode "([^"]*)" tagged "([^"]*)"$`, tc.iSaveTheAddress)
		ctx.Step(`^I pick the preferences "([^"]*)", "([^"]*)" and "([^"]*)"$`, tc.iPickThePreferences)
		ctx.Step(`^I toggle the sample (\d+)$`, tc.iToggleTheSample)
		ctx.Step(`^I finish choosing samples$`, tc.iFinishChoosingSamples)

		// Then steps
		ctx.Step(`^the resolution is "([^"]*)"$`, tc.theResolutionIs)
		ctx.Step(`^the resolution reason is "([^"]*)"$`, tc.theResolutionReasonIs)
		ctx.Step(`^the workflow is awaiting user action$`, tc.theWorkflowIsAwaitingUserAction)
		ctx.Step(`^the workflow is not awaiting user action$`, tc.theWorkflowIsNotAwaitingUserAction)
		ctx.Step(`^the session location address is "([^"]*)"$`, tc.theSessionLocationAddressIs)
		ctx.Step(`^the session location city is "([^"]*)"$`, tc.theSessionLocationCityIs)
		ctx.Step(`^the session location is serviceable$`, tc.theSessionLocationIsServiceable)
		ctx.Step(`^the session location is not serviceable$`, tc.theSessionLocationIsNotServiceable)
		ctx.Step(`^the session has no location$`, tc.theSessionHasNoLocation)
		ctx.Step(`^confirming the location fails with "([^"]*)"$`, tc.confirmingTheLocationFailsWith)
		ctx.Step(`^the location step is completed$`, tc.theLocationStepIsCompleted)
		ctx.Step(`^the location step is not completed$`, tc.theLocationStepIsNotCompleted)
		ctx.Step(`^I am logged in$`, tc.iAmLoggedIn)
		ctx.Step(`^I am not logged in$`, tc.iAmNotLoggedIn)
		ctx.Step(`^the last error is "([^"]*)"$`, tc.theLastErrorIs)
		ctx.Step(`^there is no error$`, tc.thereIsNoError)
		ctx.Step(`^(\d+) samples are selected$`, tc.samplesAreSelected)
		ctx.Step(`^onboarding is complete$`, tc.onboardingIsComplete)
		ctx.Step(`^(\d+) of (\d+) steps are completed$`, tc.stepsAreCompleted)
	}
}

func TestFeatures(t *testing.T) {
	catalog, err := storage.NewSQLiteCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("failed to open catalog: %v", err)
	}
	defer catalog.Close()

	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario(catalog),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
