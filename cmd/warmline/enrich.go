package main

import (
	"fmt"
	"strings"

	"github.com/warmlinehq/warmline"
)

// Run executes the enrich command. It walks discovered people without an
// email address and asks the enrichment service for contact details.
func (c *EnrichCmd) Run(deps *Dependencies) error {
	status := warmline.StatusDiscovered
	people, err := deps.People.FindPeople(deps.Ctx, warmline.PersonFilter{
		Status:       &status,
		MissingEmail: true,
		Limit:        c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
		return err
	}

	if len(people) == 0 {
		fmt.Fprintln(deps.Stdout, "No people need enriching.")
		return nil
	}

	enriched := 0
	for _, p := range people {
		first, last := splitName(p.Name)
		if first == "" {
			continue
		}

		match, err := deps.Matcher.MatchPerson(deps.Ctx, warmline.MatchRequest{
			FirstName:    first,
			LastName:     last,
			Organization: p.Organization,
			LinkedIn:     p.LinkedIn,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
			return err
		}
		if match == nil {
			fmt.Fprintf(deps.Stdout, "  no match for %s\n", p.Name)
			continue
		}

		upd := warmline.PersonUpdate{}
		newStatus := warmline.StatusEnriched
		upd.Status = &newStatus
		if match.Email != "" {
			upd.Email = &match.Email
		}
		if match.LinkedIn != "" && p.LinkedIn == "" {
			upd.LinkedIn = &match.LinkedIn
		}
		if match.Title != "" && p.Title == "" {
			upd.Title = &match.Title
		}

		if _, err := deps.People.UpdatePerson(deps.Ctx, p.ID, upd); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
			return err
		}
		enriched++
		fmt.Fprintf(deps.Stdout, "  enriched %s (%s)\n", p.Name, match.Email)
	}

	fmt.Fprintf(deps.Stdout, "Enriched %d of %d people\n", enriched, len(people))
	return nil
}

// splitName separates a full name into first name and remainder.
func splitName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
