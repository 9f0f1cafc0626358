package scenario

import (
	"time"

	"github.com/google/uuid"
)

// Holder owns the form state of every scenario and the selected tab. It lives
// for one program run; nothing is persisted.
type Holder struct {
	sessionID string
	active    ID

	Documents      IdentityDocumentState
	Minor          MinorAccountState
	Representative AuthorizedRepresentativeState
}

func NewHolder(active ID) *Holder {
	if !active.Valid() {
		active = IdentityDocuments
	}
	h := &Holder{sessionID: uuid.NewString(), active: active}
	for _, id := range All {
		h.Reset(id)
	}
	return h
}

func (h *Holder) SessionID() string { return h.sessionID }
func (h *Holder) Active() ID        { return h.active }

// SetActive selects a scenario tab. Unknown ids are ignored.
func (h *Holder) SetActive(id ID) bool {
	if !id.Valid() {
		return false
	}
	h.active = id
	return true
}

// Cycle moves the active tab by delta, wrapping at both ends.
func (h *Holder) Cycle(delta int) ID {
	n := len(All)
	idx := (int(h.active) - 1 + delta%n + n) % n
	h.active = All[idx]
	return h.active
}

// Reset restores a scenario's form to its start-up defaults.
func (h *Holder) Reset(id ID) {
	switch id {
	case IdentityDocuments:
		h.Documents = DefaultIdentityDocuments()
	case MinorAccount:
		h.Minor = MinorAccountState{}
	case AuthorizedRepresentative:
		h.Representative = AuthorizedRepresentativeState{}
	}
}

// LoadPreset fills a scenario with sample data that triggers its banner.
// The sample birth date is written in layout, or DateLayout when empty.
func (h *Holder) LoadPreset(id ID, now time.Time, layout string) {
	if layout == "" {
		layout = DateLayout
	}
	switch id {
	case IdentityDocuments:
		h.Documents = IdentityDocumentState{HasIDDocument: true, HasSignature: false}
	case MinorAccount:
		h.Minor = MinorAccountState{BirthDate: now.AddDate(-10, 0, 0).Format(layout)}
	case AuthorizedRepresentative:
		h.Representative = AuthorizedRepresentativeState{
			Enabled:      true,
			Title:        "Mrs",
			Name:         "Jane Citizen",
			ID:           "123456789",
			Relationship: "Legal Guardian",
		}
	}
}
