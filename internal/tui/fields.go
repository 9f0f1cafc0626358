package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jask/commsbanner/internal/scenario"
)

type fieldKind string

const (
	toggleField fieldKind = "toggle"
	textField   fieldKind = "text"
	pickerField fieldKind = "picker"
)

type fieldID string

const (
	fieldIDDocument      fieldID = "id-document"
	fieldSignature       fieldID = "signature"
	fieldBirthDate       fieldID = "birth-date"
	fieldAuthEnabled     fieldID = "auth-enabled"
	fieldRepTitle        fieldID = "rep-title"
	fieldRepName         fieldID = "rep-name"
	fieldRepID           fieldID = "rep-id"
	fieldRepRelationship fieldID = "rep-relationship"
)

type field struct {
	id          fieldID
	kind        fieldKind
	label       string
	hint        string
	placeholder string
	options     []string
	nested      bool
}

var (
	idDocumentField = field{id: fieldIDDocument, kind: toggleField, label: "ID Document Present", hint: "Identity document is available"}
	signatureField  = field{id: fieldSignature, kind: toggleField, label: "Specimen Signature Present", hint: "Signature specimen is available"}
	birthDateField  = field{id: fieldBirthDate, kind: textField, label: "Birth Date"}
	authField       = field{id: fieldAuthEnabled, kind: toggleField, label: "Enable Authorisation", hint: "Allow authorized representative access"}
	repTitleField   = field{id: fieldRepTitle, kind: pickerField, label: "Title", placeholder: "Select title", options: scenario.TitleOptions, nested: true}
	repNameField    = field{id: fieldRepName, kind: textField, label: "Full Name", placeholder: "John Doe", nested: true}
	repIDField      = field{id: fieldRepID, kind: textField, label: "ID Number", placeholder: "123456789", nested: true}
	repRelField     = field{id: fieldRepRelationship, kind: pickerField, label: "Relationship", placeholder: "Select relationship", options: scenario.RelationshipOptions, nested: true}
)

// fieldsFor lists the editable fields of a scenario in focus order. The
// representative details only exist while authorisation is enabled.
func fieldsFor(h *scenario.Holder, id scenario.ID) []field {
	switch id {
	case scenario.IdentityDocuments:
		return []field{idDocumentField, signatureField}
	case scenario.MinorAccount:
		return []field{birthDateField}
	case scenario.AuthorizedRepresentative:
		if !h.Representative.Enabled {
			return []field{authField}
		}
		return []field{authField, repTitleField, repNameField, repIDField, repRelField}
	default:
		return nil
	}
}

func newInputs(dateLayout string) map[fieldID]textinput.Model {
	mk := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder
		in.CharLimit = 0 // unlimited
		return in
	}
	return map[fieldID]textinput.Model{
		fieldBirthDate: mk(layoutPlaceholder(dateLayout)),
		fieldRepName:   mk(repNameField.placeholder),
		fieldRepID:     mk(repIDField.placeholder),
	}
}

// layoutPlaceholder turns a Go reference layout into a hint such as YYYY-MM-DD.
func layoutPlaceholder(layout string) string {
	return strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD").Replace(layout)
}

func (a *App) toggleValue(id fieldID) bool {
	switch id {
	case fieldIDDocument:
		return a.holder.Documents.HasIDDocument
	case fieldSignature:
		return a.holder.Documents.HasSignature
	case fieldAuthEnabled:
		return a.holder.Representative.Enabled
	}
	return false
}

func (a *App) setToggle(id fieldID, v bool) {
	switch id {
	case fieldIDDocument:
		a.holder.Documents.HasIDDocument = v
	case fieldSignature:
		a.holder.Documents.HasSignature = v
	case fieldAuthEnabled:
		a.holder.Representative.Enabled = v
	}
}

func (a *App) pickerValue(id fieldID) string {
	switch id {
	case fieldRepTitle:
		return a.holder.Representative.Title
	case fieldRepRelationship:
		return a.holder.Representative.Relationship
	}
	return ""
}

func (a *App) setPicker(id fieldID, v string) {
	switch id {
	case fieldRepTitle:
		a.holder.Representative.Title = v
	case fieldRepRelationship:
		a.holder.Representative.Relationship = v
	}
}

// syncText copies a text input's value into the state holder.
func (a *App) syncText(id fieldID) {
	v := a.inputs[id].Value()
	switch id {
	case fieldBirthDate:
		a.holder.Minor.BirthDate = v
	case fieldRepName:
		a.holder.Representative.Name = v
	case fieldRepID:
		a.holder.Representative.ID = v
	}
}

// loadInputs copies the state holder into the text inputs after a reset or
// preset replaced the state wholesale.
func (a *App) loadInputs() {
	values := map[fieldID]string{
		fieldBirthDate: a.holder.Minor.BirthDate,
		fieldRepName:   a.holder.Representative.Name,
		fieldRepID:     a.holder.Representative.ID,
	}
	for id, v := range values {
		in := a.inputs[id]
		in.SetValue(v)
		a.inputs[id] = in
	}
}
