package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/freshcart/internal/domain"
)

// AddressForm is a Bubble Tea component collecting the delivery address
type AddressForm struct {
	Completed bool
	address   domain.AddressDetails
	form      *huh.Form
}

// NewAddressForm creates the address form, prefilled from the confirmed location
func NewAddressForm(loc domain.ResolvedLocation) *AddressForm {
	af := &AddressForm{
		address: domain.AddressDetails{
			City:  cityForForm(loc.City),
			Line2: loc.SubAddress,
			Tag:   domain.AddressTags[0],
		},
	}

	tagOptions := make([]huh.Option[string], 0, len(domain.AddressTags))
	for _, tag := range domain.AddressTags {
		tagOptions = append(tagOptions, huh.NewOption(tag, tag))
	}

	af.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Delivering to").
				Description(fmt.Sprintf("%s\n%s", loc.Address, loc.SubAddress)),
			huh.NewInput().
				Title("House / flat / block no.").
				Value(&af.address.Line1).
				Validate(required("address line 1")),
			huh.NewInput().
				Title("Apartment / road / area").
				Value(&af.address.Line2).
				Validate(required("address line 2")),
			huh.NewInput().
				Title("City").
				Value(&af.address.City).
				Validate(required("city")),
			huh.NewInput().
				Title("State").
				Value(&af.address.State).
				Validate(required("state")),
			huh.NewInput().
				Title("Pincode").
				CharLimit(6).
				Value(&af.address.Pincode).
				Validate(domain.ValidatePincode),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Delivery instructions").
				Description("Optional").
				CharLimit(200).
				Value(&af.address.Instructions),
			huh.NewSelect[string]().
				Title("Save as").
				Options(tagOptions...).
				Value(&af.address.Tag),
		),
	).WithShowHelp(false)

	return af
}

func (af *AddressForm) Init() tea.Cmd {
	return af.form.Init()
}

func (af *AddressForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := af.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		af.form = f
	}

	if af.form.State == huh.StateCompleted {
		af.Completed = true
		return af, nil
	}
	return af, cmd
}

func (af *AddressForm) View() string {
	return af.form.View()
}

// Result returns the entered address
func (af *AddressForm) Result() domain.AddressDetails {
	return af.address
}

// cityForForm leaves the field empty rather than prefilling "Unknown"
func cityForForm(city string) string {
	if city == domain.UnknownCity {
		return ""
	}
	return city
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
