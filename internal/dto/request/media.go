package request

// MediaListRequest is parsed from query parameters. Type and Category
// are not validated against the known values: an unknown type filters
// to an empty list and an unknown category applies no date filter,
// never an error.
type MediaListRequest struct {
	Type     string
	Category string
	Search   string
	Genre    string
	Page     int `validate:"min=1"`
	Limit    int `validate:"min=1,max=500"`
}
