package forms

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// AuthorForm carries the fields of the author create form. Field names match
// the HTML inputs exactly. Only the name and birth date are required; the
// remaining attributes are free text and may be left empty.
type AuthorForm struct {
	FirstName  string `form:"fName"     validate:"required"`
	LastName   string `form:"lName"     validate:"required"`
	BirthDate  string `form:"birthDate" validate:"required"`
	DeathDate  string `form:"birthDeath"`
	Sex        string `form:"sex"`
	Profession string `form:"profession"`
	Country    string `form:"country"`
	Portrait   string `form:"portrait"`
	Biography  string `form:"biography"`
}

// AuthorEditForm is the author form plus the identity of the row being
// updated, which travels in the form body on submit.
type AuthorEditForm struct {
	AuthorForm

	AuthorID string `form:"authorId" validate:"required"`
}

// toDomain coerces the raw string fields into a domain author. The death
// date input is optional and an empty submission means "still living", which
// is stored as NULL.
func (f *AuthorForm) toDomain() (*domain.Author, error) {
	dob, err := parseISODate("birthDate", f.BirthDate)
	if err != nil {
		return nil, err
	}

	dod, err := optionalISODate("birthDeath", f.DeathDate)
	if err != nil {
		return nil, err
	}

	return &domain.Author{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		BirthDate:  dob,
		DeathDate:  dod,
		Sex:        f.Sex,
		Profession: f.Profession,
		Country:    f.Country,
		Portrait:   f.Portrait,
		Biography:  f.Biography,
	}, nil
}

// BindAuthorCreate binds and validates the author create form.
func BindAuthorCreate(c *gin.Context) (*domain.Author, error) {
	var form AuthorForm
	if err := bindAndValidate(c, &form); err != nil {
		return nil, err
	}

	return form.toDomain()
}

// BindAuthorUpdate binds and validates the author edit form, including the
// target id.
func BindAuthorUpdate(c *gin.Context) (*domain.Author, error) {
	var form AuthorEditForm
	if err := bindAndValidate(c, &form); err != nil {
		return nil, err
	}

	author, err := form.toDomain()
	if err != nil {
		return nil, err
	}

	id, err := parseID("authorId", form.AuthorID)
	if err != nil {
		return nil, err
	}

	author.ID = id

	return author, nil
}
