package main

import (
	"fmt"

	"github.com/warmlinehq/warmline"
)

// Run executes the source add command.
func (c *SourceAddCmd) Run(deps *Dependencies) error {
	source := &warmline.Source{
		URL:                 c.URL,
		Name:                c.Name,
		ForTag:              c.Tag,
		CheckFrequencyHours: c.Every,
	}

	if err := deps.Sources.CreateSource(deps.Ctx, source); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added source %q (%s), checked every %dh\n",
		source.URL, source.ID, source.CheckFrequencyHours)
	return nil
}

// Run executes the source list command.
func (c *SourceListCmd) Run(deps *Dependencies) error {
	sources, err := deps.Sources.FindSources(deps.Ctx, warmline.SourceFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'warmline source add' to create one.")
		return nil
	}

	for _, s := range sources {
		status := "active"
		if !s.IsActive {
			status = "paused"
		}
		checked := "never checked"
		if s.LastCheckedAt != nil {
			checked = fmt.Sprintf("last checked %s, %d people",
				s.LastCheckedAt.Format("2006-01-02 15:04"), s.LastPeopleCount)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s]  every %dh  %s  (%s)\n",
			s.ID, s.URL, s.ForTag, s.CheckFrequencyHours, status, checked)
	}

	return nil
}

// Run executes the source remove command.
func (c *SourceRemoveCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm removal\n")
		return warmline.Errorf(warmline.EINVALID, "use --force to confirm removal")
	}

	source, err := deps.Sources.FindSourceByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
		return err
	}

	if err := deps.Sources.DeleteSource(deps.Ctx, source.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed source %q\n", source.URL)
	return nil
}
