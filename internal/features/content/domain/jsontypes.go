package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList accepts either a single JSON string or an array of strings.
// The content files use both forms for phone numbers, locations and WhatsApp numbers.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var items []Text
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("string list: %w", err)
		}
		out := make(StringList, 0, len(items))
		for _, item := range items {
			out = append(out, string(item))
		}
		*l = out
		return nil
	}

	var single Text
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	*l = StringList{string(single)}
	return nil
}

// First returns the first element, or "" for an empty list.
func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Last returns the last element, or "" for an empty list.
func (l StringList) Last() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1]
}

// Text accepts a JSON string or number and keeps its textual form ("2019", 2019).
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("text: expected string or number, got %s", data)
		}
		*t = Text(n.String())
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Description is a free-text field that may also be given as a list of bullet points.
type Description struct {
	Text   string
	Points []string
}

// IsList reports whether the JSON value was an array.
func (d Description) IsList() bool {
	return d.Points != nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Description) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var points StringList
		if err := json.Unmarshal(data, &points); err != nil {
			return fmt.Errorf("description: %w", err)
		}
		*d = Description{Points: []string(points)}
		if d.Points == nil {
			d.Points = []string{}
		}
		return nil
	}

	var text Text
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("description: %w", err)
	}
	*d = Description{Text: string(text)}
	return nil
}

// MarshalJSON writes the description back in the form it was read.
func (d Description) MarshalJSON() ([]byte, error) {
	if d.IsList() {
		return json.Marshal(d.Points)
	}
	return json.Marshal(d.Text)
}

// SocialLink is one platform entry of the footer.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinks decodes a JSON object of platform to URL, keeping document order.
type SocialLinks []SocialLink

// UnmarshalJSON implements json.Unmarshaler.
func (s *SocialLinks) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("social links: %w", err)
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("social links: expected object, got %v", tok)
	}

	var links SocialLinks
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("social links: %w", err)
		}
		platform, _ := keyTok.(string)

		var url Text
		if err := dec.Decode(&url); err != nil {
			return fmt.Errorf("social links: %s: %w", platform, err)
		}
		links = append(links, SocialLink{Platform: platform, URL: strings.TrimSpace(string(url))})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("social links: %w", err)
	}
	*s = links
	return nil
}

// Active returns the links that have a URL set.
func (s SocialLinks) Active() []SocialLink {
	var out []SocialLink
	for _, link := range s {
		if link.URL != "" {
			out = append(out, link)
		}
	}
	return out
}
