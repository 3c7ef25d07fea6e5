package types

// GMSHash is the service's retargeting parameter bundle. Keys this client does
// not rewrite (trim, params, overdrive) are forwarded verbatim.
type GMSHash map[string]any

// AnimationDetails wraps the detail-only fields of a product record.
type AnimationDetails struct {
	GMSHash GMSHash `json:"gms_hash"`
}

// AnimationDescriptor is the detail record of one animation product.
type AnimationDescriptor struct {
	ID          AnimationID      `json:"id"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Details     AnimationDetails `json:"details"`
}

// CatalogEntry is one (animation-id, display-name) pair to export.
type CatalogEntry struct {
	ID          AnimationID `json:"id"`
	Description string      `json:"description"`
}

// Catalog is an ordered list of entries with unique IDs.
type Catalog []CatalogEntry

// IDs returns the entry IDs in order.
func (c Catalog) IDs() []AnimationID {
	out := make([]AnimationID, 0, len(c))
	for _, e := range c {
		out = append(out, e.ID)
	}
	return out
}

// Pagination is the paging block of a product search response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	NumPages   int `json:"num_pages"`
	NumResults int `json:"num_results"`
}

// SearchPage is one page of product search results.
type SearchPage struct {
	Results    []CatalogEntry `json:"results"`
	Pagination Pagination     `json:"pagination"`
}
