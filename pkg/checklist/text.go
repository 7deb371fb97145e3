package checklist

import "encoding/xml"

// Text is an optional free-text field. It distinguishes an element that
// was never written (unset) from one that is present, even when empty.
// The zero value is unset. Encode omits unset fields and writes set ones,
// including empty strings.
type Text struct {
	value string
	set   bool
}

// Unset returns an unset Text.
func Unset() Text {
	return Text{}
}

// NewText returns a Text set to s.
func NewText(s string) Text {
	return Text{value: s, set: true}
}

// IsSet reports whether the field has been assigned.
func (t Text) IsSet() bool {
	return t.set
}

// Get returns the value and whether it is set.
func (t Text) Get() (string, bool) {
	return t.value, t.set
}

// String returns the value, or "" when unset.
func (t Text) String() string {
	return t.value
}

// UnmarshalXML is only invoked when the element is present, which is what makes it set.
func (t *Text) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	*t = NewText(s)
	return nil
}
