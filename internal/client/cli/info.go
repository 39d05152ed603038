package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ARPaule28/fynd-app/internal/client/flow"
	"github.com/ARPaule28/fynd-app/internal/client/forms"
	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/client/session"
)

// AdditionalInfo runs the first onboarding screen: it collects the address
// parts and the demographic fields, combines the address into the single
// stored string, and submits the fragment through the flow controller.
func (a *App) AdditionalInfo(ctx context.Context) error {
	street, err := getSimpleText(a.reader, "Street address", os.Stdout)
	if err != nil {
		return err
	}
	line2, err := getSimpleText(a.reader, "Address line 2 (optional)", os.Stdout)
	if err != nil {
		return err
	}
	city, err := getSimpleText(a.reader, "City", os.Stdout)
	if err != nil {
		return err
	}
	state, err := getSimpleText(a.reader, "State", os.Stdout)
	if err != nil {
		return err
	}
	zip, err := getSimpleText(a.reader, "Zip code", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone number", os.Stdout)
	if err != nil {
		return err
	}
	sex, err := getSimpleText(a.reader, "Sex", os.Stdout)
	if err != nil {
		return err
	}
	race, err := getSimpleText(a.reader, "Race", os.Stdout)
	if err != nil {
		return err
	}
	interest, err := getSimpleText(a.reader, "Interest", os.Stdout)
	if err != nil {
		return err
	}
	birthDate, err := getSimpleText(a.reader, "Birth date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	info := models.InfoFragment{
		Address:     forms.CombineAddress(street, line2, city, state, zip),
		PhoneNumber: phone,
		Sex:         sex,
		Race:        race,
		Interest:    interest,
		BirthDate:   birthDate,
	}

	err = a.flow.Submit(ctx, flow.StepAdditionalInfo, func(ctx context.Context, sess session.Session) error {
		return a.profiles.SubmitInfo(ctx, sess, info)
	})
	if err != nil {
		fmt.Println("Could not save additional info:", err)
		return err
	}
	return nil
}
