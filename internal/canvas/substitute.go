package canvas

import "strings"

const (
	NamePlaceholder    = "{{name}}"
	MessagePlaceholder = "{{message}}"

	// Shown when a runtime value is empty, matching the editor preview.
	DefaultName    = "Recipient Name"
	DefaultMessage = "Your message here"
)

// Substitute resolves placeholder tokens in a text element label. Replacement
// is a single pass: values containing tokens are not re-substituted, matching
// is exact and case-sensitive, and labels without tokens pass through
// unchanged. Empty name/message fall back to the editor defaults.
func Substitute(label, name, message string) string {
	if name == "" {
		name = DefaultName
	}
	if message == "" {
		message = DefaultMessage
	}

	// Replacer walks the label once and never rescans replaced text, so a
	// name value containing "{{message}}" stays literal.
	return strings.NewReplacer(
		NamePlaceholder, name,
		MessagePlaceholder, message,
	).Replace(label)
}
