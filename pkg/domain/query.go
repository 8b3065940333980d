package domain

// Query is the immutable input to a single pipeline run: the user's
// natural-language question plus the identity whose records may be consulted.
type Query struct {
	Text     string `json:"text"`
	Identity string `json:"identity"`
}

// Validate rejects malformed queries before any routing happens.
func (q Query) Validate() error {
	if q.Text == "" {
		return ErrEmptyQuery
	}
	if q.Identity == "" {
		return ErrMissingIdentity
	}
	return nil
}
