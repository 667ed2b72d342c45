package mysql

import (
	"time"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// authorRow maps the q_authors table. Column names follow the persisted
// schema, not Go naming.
type authorRow struct {
	AuthorID   int64      `gorm:"column:authorId;primaryKey;autoIncrement"`
	FirstName  string     `gorm:"column:firstName;size:64;not null"`
	LastName   string     `gorm:"column:lastName;size:64;not null"`
	Dob        time.Time  `gorm:"column:dob;type:date;not null"`
	Dod        *time.Time `gorm:"column:dod;type:date"`
	Sex        string     `gorm:"column:sex;size:16"`
	Profession string     `gorm:"column:profession;size:128"`
	Country    string     `gorm:"column:country;size:64"`
	Portrait   string     `gorm:"column:portrait;size:512"`
	Biography  string     `gorm:"column:biography;type:text"`
}

func (authorRow) TableName() string { return "q_authors" }

func (r *authorRow) toDomain() domain.Author {
	return domain.Author{
		ID:         r.AuthorID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		BirthDate:  r.Dob,
		DeathDate:  r.Dod,
		Sex:        r.Sex,
		Profession: r.Profession,
		Country:    r.Country,
		Portrait:   r.Portrait,
		Biography:  r.Biography,
	}
}

func authorRowFromDomain(a *domain.Author) authorRow {
	return authorRow{
		AuthorID:   a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Dob:        a.BirthDate,
		Dod:        a.DeathDate,
		Sex:        a.Sex,
		Profession: a.Profession,
		Country:    a.Country,
		Portrait:   a.Portrait,
		Biography:  a.Biography,
	}
}

// quoteRow maps the q_quotes table. The Author association exists so
// AutoMigrate declares the foreign key; deletes of referenced authors are
// then the store's problem, as the original behaves.
type quoteRow struct {
	QuoteID  int64      `gorm:"column:quoteId;primaryKey;autoIncrement"`
	Quote    string     `gorm:"column:quote;type:text;not null"`
	AuthorID int64      `gorm:"column:authorId;not null;index"`
	Author   *authorRow `gorm:"foreignKey:AuthorID;references:AuthorID"`
	Category string     `gorm:"column:category;size:64"`
	Likes    *int64     `gorm:"column:likes"`
}

func (quoteRow) TableName() string { return "q_quotes" }

func (r *quoteRow) toDomain() domain.Quote {
	return domain.Quote{
		ID:       r.QuoteID,
		Text:     r.Quote,
		AuthorID: r.AuthorID,
		Category: r.Category,
		Likes:    r.Likes,
	}
}

// quoteJoinRow scans the quote listing join.
type quoteJoinRow struct {
	QuoteID   int64  `gorm:"column:quoteId"`
	Quote     string `gorm:"column:quote"`
	AuthorID  int64  `gorm:"column:authorId"`
	Category  string `gorm:"column:category"`
	Likes     *int64 `gorm:"column:likes"`
	FirstName string `gorm:"column:firstName"`
	LastName  string `gorm:"column:lastName"`
}

func (r *quoteJoinRow) toDomain() domain.QuoteWithAuthor {
	return domain.QuoteWithAuthor{
		Quote: domain.Quote{
			ID:       r.QuoteID,
			Text:     r.Quote,
			AuthorID: r.AuthorID,
			Category: r.Category,
			Likes:    r.Likes,
		},
		AuthorFirstName: r.FirstName,
		AuthorLastName:  r.LastName,
	}
}

// authorOptionRow scans the slim author projection for select widgets.
type authorOptionRow struct {
	AuthorID  int64  `gorm:"column:authorId"`
	FirstName string `gorm:"column:firstName"`
	LastName  string `gorm:"column:lastName"`
}

func (r *authorOptionRow) toDomain() domain.AuthorOption {
	return domain.AuthorOption{
		ID:        r.AuthorID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}
