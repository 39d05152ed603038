package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ARPaule28/fynd-app/internal/client/flow"
	"github.com/ARPaule28/fynd-app/internal/client/forms"
	"github.com/ARPaule28/fynd-app/internal/client/session"
)

// Skills runs the skills screen: three checkbox categories, each with an
// optional free-text "Others" entry, plus the personal-skills text. The whole
// selection is serialized into one string on submit.
func (a *App) Skills(ctx context.Context) error {
	form := forms.NewSkillsForm()

	for _, group := range form.Groups() {
		picks, err := GetToggles(a.reader, group.Name(), group.Options(), os.Stdout)
		if err != nil {
			return err
		}
		for _, i := range picks {
			group.Toggle(group.Options()[i])
		}
		other, err := getSimpleText(a.reader, "Others (optional)", os.Stdout)
		if err != nil {
			return err
		}
		group.SetOther(other)
	}

	personal, err := getSimpleText(a.reader, "Personal skills (free text, optional)", os.Stdout)
	if err != nil {
		return err
	}
	form.SetPersonal(personal)

	err = a.flow.Submit(ctx, flow.StepSkills, func(ctx context.Context, sess session.Session) error {
		return a.profiles.SubmitSkills(ctx, sess, form)
	})
	if err != nil {
		fmt.Println("Could not save skills:", err)
		return err
	}
	return nil
}
