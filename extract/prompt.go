package extract

import (
	"fmt"

	"github.com/warmlinehq/warmline"
)

// promptTemplate fixes the output contract the completion service must obey:
// a JSON array only, exactly six fields per element, empty strings for
// unknowns, an empty array when no people are found, and no fabricated
// contact details. The repair step compensates for violations of this
// contract; it does not replace it.
const promptTemplate = `Analyze the following web page content and extract all people mentioned. For each person, provide their name, title/role (if mentioned), organization (if mentioned), email address (if found on the page), LinkedIn profile URL (if found on the page), and a personalization-ready context.

The "context" field is the most important part of this extraction — it will be used to write personalized outreach messages to these individuals. Follow these rules for context:

1. BEST: If the person is quoted or paraphrased on the page (something they said, a viewpoint they shared, a topic they presented on), use that. Include the actual quote or a close paraphrase. This is the most valuable context for personalization.
2. FALLBACK: If there is no quote or statement from the person, describe the event or setting where they appear — include the conference/event name, date, location, and their role (e.g. "Speaker at TechCrunch Disrupt 2025, San Francisco, Oct 14-16" or "Panelist on 'AI in Healthcare' at HIMSS 2025, Chicago").
3. Be specific and detailed. Generic context like "mentioned on the page" is useless. Always extract the most concrete, personalizable detail available.

Return ONLY a valid JSON array with no additional text. Each element should have these fields:
- "name": the person's full name
- "title": their title or role (empty string if unknown)
- "organization": their organization (empty string if unknown)
- "email": their email address if explicitly present on the page (empty string if not found)
- "linkedin": their LinkedIn profile URL if explicitly present on the page (empty string if not found)
- "context": the personalization-ready context as described above

Only include email and LinkedIn if they are actually present on the page. Do not guess or fabricate them.

If no people are found, return an empty array [].

Page title: %s
Page URL: %s

Page content:
%s`

// BuildPrompt composes the completion request from a page capture. It is a
// pure function: the same capture always yields the same prompt.
func BuildPrompt(capture *warmline.PageCapture) string {
	return fmt.Sprintf(promptTemplate, capture.Title, capture.URL, capture.Text)
}
