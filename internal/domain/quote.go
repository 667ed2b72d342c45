package domain

// Quote represents a quotation attributed to an author.
type Quote struct {
	// ID is the store-generated identifier.
	ID int64

	// Text is the body of the quotation.
	Text string

	// AuthorID references the owning Author. The association is
	// many-to-one; referential integrity is the store's concern.
	AuthorID int64

	// Category is a free-text label. The set of categories in use is
	// derived from existing quotes, not curated separately.
	Category string

	// Likes is nil when no count has been recorded.
	Likes *int64
}

// QuoteWithAuthor is a Quote joined with its author's display name,
// as shown on the quote listing.
type QuoteWithAuthor struct {
	Quote

	AuthorFirstName string
	AuthorLastName  string
}

// AuthorName renders the joined author display name.
func (q *QuoteWithAuthor) AuthorName() string {
	return q.AuthorFirstName + " " + q.AuthorLastName
}
