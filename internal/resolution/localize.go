package resolution

import "github.com/louisbranch/referencehub/internal/storage"

// LocalizedReference is the single-language projection of a resolved
// reference: each language map collapsed to the string at the requested tag,
// with the tag itself attached. Fields whose map lacks the tag are absent.
type LocalizedReference struct {
	ReferenceID      string `json:"referenceId"`
	Label            string `json:"label,omitempty"`
	Description      string `json:"description,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Group            string `json:"group,omitempty"`
	Language         string `json:"language"`
}

// Localize collapses a resolved reference to the requested language tag.
func Localize(ref storage.Reference, language string) LocalizedReference {
	return LocalizedReference{
		ReferenceID:      ref.ReferenceID,
		Label:            ref.Label[language],
		Description:      ref.Description[language],
		ShortDescription: ref.ShortDescription[language],
		Group:            ref.Group,
		Language:         language,
	}
}
