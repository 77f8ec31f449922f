package listing

// Property is one name/label/value triple attached to a listing
type Property struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Listing represents one classified ad from the search results page.
// Only the documented subset of the upstream schema is read; unknown
// fields are ignored so upstream drift does not break extraction.
type Listing struct {
	ListID        int64      `json:"listId"`
	Subject       string     `json:"subject"`
	Price         string     `json:"price,omitempty"`
	URL           string     `json:"url"`
	Location      string     `json:"location"`
	Properties    []Property `json:"properties,omitempty"`
	AdvertisingID string     `json:"advertisingId,omitempty"`
}

// PropertyValue returns the value of the named property and whether it exists
func (l *Listing) PropertyValue(name string) (string, bool) {
	for _, p := range l.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
