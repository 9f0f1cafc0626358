// Package scenario holds the form state behind each banner and the rules
// deciding whether that banner is shown.
package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/jask/commsbanner/internal/banner"
)

type ID int

const (
	IdentityDocuments ID = iota + 1
	MinorAccount
	AuthorizedRepresentative
)

// All lists the scenarios in tab order.
var All = []ID{IdentityDocuments, MinorAccount, AuthorizedRepresentative}

func (id ID) Valid() bool {
	return id >= IdentityDocuments && id <= AuthorizedRepresentative
}

func (id ID) Title() string {
	switch id {
	case IdentityDocuments:
		return "Identity Docs"
	case MinorAccount:
		return "Minor Account"
	case AuthorizedRepresentative:
		return "Auth Representative"
	default:
		return fmt.Sprintf("Scenario %d", int(id))
	}
}

const (
	MissingDocumentsMessage = "O/S ID document and specimen signature"
	MinorAccountMessage     = "This is a Minor Account"
)

type IdentityDocumentState struct {
	HasIDDocument bool
	HasSignature  bool
}

func DefaultIdentityDocuments() IdentityDocumentState {
	return IdentityDocumentState{HasIDDocument: true, HasSignature: true}
}

// MissingDocuments reports whether either document is outstanding.
func (s IdentityDocumentState) MissingDocuments() bool {
	return !s.HasIDDocument || !s.HasSignature
}

type MinorAccountState struct {
	BirthDate string
}

func (s MinorAccountState) HasBirthDate() bool {
	return strings.TrimSpace(s.BirthDate) != ""
}

type AuthorizedRepresentativeState struct {
	Enabled      bool
	Name         string
	ID           string
	Relationship string
	Title        string
}

// Authorized reports whether representative access is enabled and every
// detail has been filled in.
func (s AuthorizedRepresentativeState) Authorized() bool {
	if !s.Enabled {
		return false
	}
	for _, v := range []string{s.Name, s.ID, s.Relationship, s.Title} {
		if v == "" {
			return false
		}
	}
	return true
}

func (s AuthorizedRepresentativeState) Message() string {
	return fmt.Sprintf("%s %s (ID: %s) is the authorised representative, relationship = %s",
		s.Title, s.Name, s.ID, s.Relationship)
}

// Evaluation is the outcome of one scenario's rule against the current state.
type Evaluation struct {
	Scenario ID
	Visible  bool
	Severity banner.Severity
	Message  string
}

func (e Evaluation) Banner() banner.Banner {
	return banner.Banner{Severity: e.Severity, Message: e.Message, Show: e.Visible}
}

// Rules evaluates the three scenarios. The zero value is not usable; start
// from DefaultRules.
type Rules struct {
	MinorAge   int
	DateLayout string
}

func DefaultRules() Rules {
	return Rules{MinorAge: 18, DateLayout: DateLayout}
}

// IsMinor reports whether a birth date is present, parses, and gives an age
// under the minor threshold as of now.
func (r Rules) IsMinor(s MinorAccountState, now time.Time) bool {
	if !s.HasBirthDate() {
		return false
	}
	if _, ok := ParseBirthDate(s.BirthDate, r.layout(), now.Location()); !ok {
		return false
	}
	return r.Age(s.BirthDate, now) < r.MinorAge
}

func (r Rules) Age(birthDate string, now time.Time) int {
	return ageWithLayout(birthDate, r.layout(), now)
}

func (r Rules) layout() string {
	if r.DateLayout == "" {
		return DateLayout
	}
	return r.DateLayout
}

func (r Rules) Evaluate(h *Holder, id ID, now time.Time) Evaluation {
	switch id {
	case IdentityDocuments:
		return Evaluation{
			Scenario: id,
			Visible:  h.Documents.MissingDocuments(),
			Severity: banner.Warning,
			Message:  MissingDocumentsMessage,
		}
	case MinorAccount:
		return Evaluation{
			Scenario: id,
			Visible:  r.IsMinor(h.Minor, now),
			Severity: banner.Info,
			Message:  MinorAccountMessage,
		}
	case AuthorizedRepresentative:
		return Evaluation{
			Scenario: id,
			Visible:  h.Representative.Authorized(),
			Severity: banner.Info,
			Message:  h.Representative.Message(),
		}
	default:
		return Evaluation{Scenario: id, Severity: banner.Info}
	}
}

func (r Rules) EvaluateAll(h *Holder, now time.Time) []Evaluation {
	out := make([]Evaluation, 0, len(All))
	for _, id := range All {
		out = append(out, r.Evaluate(h, id, now))
	}
	return out
}
