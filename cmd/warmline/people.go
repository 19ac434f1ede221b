package main

import (
	"fmt"

	"github.com/warmlinehq/warmline"
)

// Run executes the people command.
func (c *PeopleCmd) Run(deps *Dependencies) error {
	filter := warmline.PersonFilter{}
	if c.Status != "" {
		filter.Status = &c.Status
	}
	if c.Tag != "" {
		filter.ForTag = &c.Tag
	}

	people, err := deps.People.FindPeople(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
		return err
	}

	if len(people) == 0 {
		fmt.Fprintln(deps.Stdout, "No people found. Use 'warmline discover' to find some.")
		return nil
	}

	for _, p := range people {
		if c.Full {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", p.ID, p.Name)
			if p.Title != "" || p.Organization != "" {
				fmt.Fprintf(deps.Stdout, "  %s, %s\n", p.Title, p.Organization)
			}
			if p.Email != "" {
				fmt.Fprintf(deps.Stdout, "  %s\n", p.Email)
			}
			if p.LinkedIn != "" {
				fmt.Fprintf(deps.Stdout, "  %s\n", p.LinkedIn)
			}
			if p.Context != "" {
				fmt.Fprintf(deps.Stdout, "  %s\n", p.Context)
			}
			fmt.Fprintf(deps.Stdout, "  [%s] %s via %s\n", p.ForTag, p.Status, p.SourceURL)
		} else {
			fmt.Fprintf(deps.Stdout, "%s  %s  %s  [%s]  %s\n",
				p.ID, p.Name, p.Organization, p.ForTag, p.Status)
		}
	}

	return nil
}
