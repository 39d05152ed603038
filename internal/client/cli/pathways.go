package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ARPaule28/fynd-app/internal/client/flow"
	"github.com/ARPaule28/fynd-app/internal/client/forms"
	"github.com/ARPaule28/fynd-app/internal/client/session"
)

// Pathways runs the career-pathways screen: the fixed category tree is
// offered one category at a time, and the selection is serialized into the
// "Category: a, b | Category2: c" form on submit.
func (a *App) Pathways(ctx context.Context) error {
	form := forms.NewPathwayForm()

	for _, group := range form.Groups() {
		picks, err := GetToggles(a.reader, group.Name(), group.Options(), os.Stdout)
		if err != nil {
			return err
		}
		for _, i := range picks {
			group.Toggle(group.Options()[i])
		}
	}

	err := a.flow.Submit(ctx, flow.StepCareerPathways, func(ctx context.Context, sess session.Session) error {
		return a.profiles.SubmitCareers(ctx, sess, form)
	})
	if err != nil {
		fmt.Println("Could not save career pathways:", err)
		return err
	}
	return nil
}
