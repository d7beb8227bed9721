package console

import (
	"fmt"
	"strings"
	"time"
)

// cipSections lists the headings every CIP scaffold must contain, in order.
var cipSections = []string{ //nolint: gochecknoglobals
	"Title (proposed)",
	"Status (always: Draft, DO NOT change)",
	"Category (attempt best fit: Core, Wallets, Metadata, Tokens, Plutus, Governance, Other)",
	"Authors (placeholder line)",
	"Discussions-To (placeholder link)",
	"Created (%s)",
	"License (Apache-2.0 recommended, with placeholder note)",
	"Abstract",
	"Motivation",
	"Specification (outline only)",
	"Rationale",
	"Backwards Compatibility",
	"Reference Implementation (outline or pseudocode if helpful)",
	"Security Considerations",
	"Privacy Considerations",
	"Risks and Trade-offs",
	"Future Work",
	"References",
}

func cipSystemPrompt(now time.Time) string {
	var b strings.Builder
	b.WriteString("You are an assistant that drafts Cardano Improvement Proposal (CIP) scaffolds.\n")
	b.WriteString("Return ONLY well formatted GitHub Markdown suitable for a new CIP pull request.\n")
	b.WriteString("Do NOT invent finalized standards language. Produce a DRAFT scaffold clearly marked as a draft.\n")
	b.WriteString("Use concise, technical language.\n")
	b.WriteString("Sections required:\n")
	created := now.UTC().Format(time.DateOnly)
	for i, s := range cipSections {
		if strings.HasPrefix(s, "Created") {
			s = fmt.Sprintf(s, created)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("Include a short motivation focusing on why this matters to the Cardano ecosystem.")

	return b.String()
}
