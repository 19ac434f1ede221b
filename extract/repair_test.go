package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmlinehq/warmline"
	"github.com/warmlinehq/warmline/extract"
)

func TestRepair(t *testing.T) {
	t.Parallel()

	t.Run("leaves valid array unchanged", func(t *testing.T) {
		t.Parallel()

		in := `[{"name":"Ada"}]`
		assert.Equal(t, in, extract.Repair(in, false))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `[]`, extract.Repair("  \n[]\n  ", false))
	})

	t.Run("strips tagged code fence", func(t *testing.T) {
		t.Parallel()

		in := "```json\n[{\"name\":\"Ada\"}]\n```"
		assert.Equal(t, `[{"name":"Ada"}]`, extract.Repair(in, false))
	})

	t.Run("strips untagged code fence", func(t *testing.T) {
		t.Parallel()

		in := "```\n[{\"name\":\"Ada\"}]\n```"
		assert.Equal(t, `[{"name":"Ada"}]`, extract.Repair(in, false))
	})

	t.Run("discards preamble before array", func(t *testing.T) {
		t.Parallel()

		in := `Here are the people I found: [{"name":"Ada"}]`
		assert.Equal(t, `[{"name":"Ada"}]`, extract.Repair(in, false))
	})

	t.Run("closes truncated array at last complete object", func(t *testing.T) {
		t.Parallel()

		in := `[{"name":"A"},{"name":"B"`
		assert.Equal(t, `[{"name":"A"}]`, extract.Repair(in, true))
	})

	t.Run("repairs unterminated array even without truncation signal", func(t *testing.T) {
		t.Parallel()

		in := `[{"name":"A"},{"name":"B"}`
		assert.Equal(t, `[{"name":"A"},{"name":"B"}]`, extract.Repair(in, false))
	})

	t.Run("truncated fenced response", func(t *testing.T) {
		t.Parallel()

		in := "```json\n[{\"name\":\"A\"},{\"name\":\"B\",\"ti"
		assert.Equal(t, `[{"name":"A"}]`, extract.Repair(in, true))
	})
}

func TestParsePeople(t *testing.T) {
	t.Parallel()

	t.Run("decodes full records", func(t *testing.T) {
		t.Parallel()

		in := `[{"name":"Ada Lovelace","title":"Analyst","organization":"AE Inc","email":"","linkedin":"","context":"Keynote on engines"}]`
		people, err := extract.ParsePeople(in, false)
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Ada Lovelace", people[0].Name)
		assert.Equal(t, "Analyst", people[0].Title)
		assert.Equal(t, "AE Inc", people[0].Organization)
		assert.Equal(t, "Keynote on engines", people[0].Context)
	})

	t.Run("decodes empty array", func(t *testing.T) {
		t.Parallel()

		people, err := extract.ParsePeople("[]", false)
		require.NoError(t, err)
		assert.Empty(t, people)
	})

	t.Run("recovers complete records from truncated response", func(t *testing.T) {
		t.Parallel()

		in := `[{"name":"A","title":"","organization":"","email":"","linkedin":"","context":""},{"name":"B","tit`
		people, err := extract.ParsePeople(in, true)
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "A", people[0].Name)
	})

	t.Run("returns EPARSE for unrepairable text", func(t *testing.T) {
		t.Parallel()

		_, err := extract.ParsePeople("I could not find any people on this page.", false)
		require.Error(t, err)
		assert.Equal(t, warmline.EPARSE, warmline.ErrorCode(err))
	})
}
