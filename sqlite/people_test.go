package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmlinehq/warmline"
	"github.com/warmlinehq/warmline/sqlite"
)

func TestPeopleService_CreatePerson(t *testing.T) {
	t.Parallel()

	t.Run("creates person with defaults", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		ctx := context.Background()

		row := &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace", Organization: "AE Inc"},
			SourceURL: "https://example.com/speakers",
		}
		require.NoError(t, svc.CreatePerson(ctx, row))

		assert.NotEmpty(t, row.ID)
		assert.False(t, row.CreatedAt.IsZero())
		assert.Equal(t, warmline.DefaultTag, row.ForTag)
		assert.Equal(t, warmline.StatusDiscovered, row.Status)

		got, err := svc.FindPersonByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", got.Name)
		assert.Equal(t, "AE Inc", got.Organization)
	})

	t.Run("rejects duplicate identity with ECONFLICT", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		ctx := context.Background()

		first := &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace", Organization: "AE Inc"},
			SourceURL: "https://example.com/a",
		}
		require.NoError(t, svc.CreatePerson(ctx, first))

		dup := &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace", Organization: "AE Inc"},
			SourceURL: "https://example.com/b",
		}
		err := svc.CreatePerson(ctx, dup)
		require.Error(t, err)
		assert.Equal(t, warmline.ECONFLICT, warmline.ErrorCode(err))
	})

	t.Run("identity normalizes case and whitespace", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		ctx := context.Background()

		first := &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace", Organization: "AE Inc"},
			SourceURL: "https://example.com/a",
		}
		require.NoError(t, svc.CreatePerson(ctx, first))

		dup := &warmline.PersonRow{
			Person:    warmline.Person{Name: "  ADA LOVELACE  ", Organization: "ae inc"},
			SourceURL: "https://example.com/b",
		}
		err := svc.CreatePerson(ctx, dup)
		require.Error(t, err)
		assert.Equal(t, warmline.ECONFLICT, warmline.ErrorCode(err))
	})

	t.Run("same name at different organizations is not a conflict", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreatePerson(ctx, &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace", Organization: "AE Inc"},
			SourceURL: "https://example.com/a",
		}))
		require.NoError(t, svc.CreatePerson(ctx, &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace", Organization: "Babbage Labs"},
			SourceURL: "https://example.com/b",
		}))
	})

	t.Run("rejects invalid row with EINVALID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		err := svc.CreatePerson(context.Background(), &warmline.PersonRow{})
		require.Error(t, err)
		assert.Equal(t, warmline.EINVALID, warmline.ErrorCode(err))
	})
}

func TestPeopleService_FindPersonByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing person", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		_, err := svc.FindPersonByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, warmline.ENOTFOUND, warmline.ErrorCode(err))
	})
}

func TestPeopleService_FindPeople(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.PeopleService) {
		t.Helper()
		ctx := context.Background()

		rows := []*warmline.PersonRow{
			{Person: warmline.Person{Name: "Ada Lovelace", Email: "ada@example.com"}, SourceURL: "https://example.com/a", ForTag: "mentor", Status: warmline.StatusEnriched},
			{Person: warmline.Person{Name: "Charles Babbage"}, SourceURL: "https://example.com/a", ForTag: "mentor"},
			{Person: warmline.Person{Name: "Mary Somerville"}, SourceURL: "https://example.com/b", ForTag: "peer"},
		}
		for _, row := range rows {
			require.NoError(t, svc.CreatePerson(ctx, row))
		}
	}

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		seed(t, svc)

		status := warmline.StatusEnriched
		people, err := svc.FindPeople(context.Background(), warmline.PersonFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Ada Lovelace", people[0].Name)
	})

	t.Run("filters by tag", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		seed(t, svc)

		tag := "mentor"
		people, err := svc.FindPeople(context.Background(), warmline.PersonFilter{ForTag: &tag})
		require.NoError(t, err)
		assert.Len(t, people, 2)
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		seed(t, svc)

		url := "https://example.com/b"
		people, err := svc.FindPeople(context.Background(), warmline.PersonFilter{SourceURL: &url})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Mary Somerville", people[0].Name)
	})

	t.Run("filters people missing an email", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		seed(t, svc)

		people, err := svc.FindPeople(context.Background(), warmline.PersonFilter{MissingEmail: true})
		require.NoError(t, err)
		require.Len(t, people, 2)
		for _, p := range people {
			assert.Empty(t, p.Email)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		seed(t, svc)

		people, err := svc.FindPeople(context.Background(), warmline.PersonFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, people, 2)
	})
}

func TestPeopleService_UpdatePerson(t *testing.T) {
	t.Parallel()

	t.Run("updates contact fields and status", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		ctx := context.Background()

		row := &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace"},
			SourceURL: "https://example.com/a",
		}
		require.NoError(t, svc.CreatePerson(ctx, row))

		email := "ada@example.com"
		title := "Analyst"
		status := warmline.StatusEnriched
		updated, err := svc.UpdatePerson(ctx, row.ID, warmline.PersonUpdate{
			Email:  &email,
			Title:  &title,
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", updated.Email)
		assert.Equal(t, "Analyst", updated.Title)
		assert.Equal(t, warmline.StatusEnriched, updated.Status)

		got, err := svc.FindPersonByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", got.Email)
		assert.Equal(t, warmline.StatusEnriched, got.Status)
	})

	t.Run("returns ENOTFOUND for missing person", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		email := "ada@example.com"
		_, err := svc.UpdatePerson(context.Background(), "missing", warmline.PersonUpdate{Email: &email})
		require.Error(t, err)
		assert.Equal(t, warmline.ENOTFOUND, warmline.ErrorCode(err))
	})

	t.Run("organization change onto existing identity conflicts", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPeopleService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreatePerson(ctx, &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace", Organization: "AE Inc"},
			SourceURL: "https://example.com/a",
		}))

		other := &warmline.PersonRow{
			Person:    warmline.Person{Name: "Ada Lovelace", Organization: "Babbage Labs"},
			SourceURL: "https://example.com/b",
		}
		require.NoError(t, svc.CreatePerson(ctx, other))

		org := "AE Inc"
		_, err := svc.UpdatePerson(ctx, other.ID, warmline.PersonUpdate{Organization: &org})
		require.Error(t, err)
		assert.Equal(t, warmline.ECONFLICT, warmline.ErrorCode(err))
	})
}
