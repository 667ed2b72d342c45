package forms

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

func formContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c
}

func validAuthorValues() url.Values {
	return url.Values{
		"fName":      {"Oscar"},
		"lName":      {"Wilde"},
		"birthDate":  {"1854-10-16"},
		"birthDeath": {"1900-11-30"},
		"sex":        {"Male"},
		"profession": {"Writer"},
		"country":    {"Ireland"},
		"portrait":   {"https://example.com/wilde.jpg"},
		"biography":  {"Irish poet and playwright."},
	}
}

func TestBindAuthorCreate(t *testing.T) {
	c := formContext(t, validAuthorValues())

	author, err := BindAuthorCreate(c)

	require.NoError(t, err)
	assert.Equal(t, "Oscar", author.FirstName)
	assert.Equal(t, "Wilde", author.LastName)
	assert.Equal(t, "1854-10-16", author.BirthDateISO())
	assert.Equal(t, "1900-11-30", author.DeathDateISO())
}

func TestBindAuthorCreateEmptyDeathDateIsNil(t *testing.T) {
	values := validAuthorValues()
	values.Set("birthDeath", "")

	author, err := BindAuthorCreate(formContext(t, values))

	require.NoError(t, err)
	assert.Nil(t, author.DeathDate)
	assert.Empty(t, author.DeathDateISO())
}

func TestBindAuthorCreateOnlyRequiredFields(t *testing.T) {
	values := url.Values{
		"fName":     {"Emily"},
		"lName":     {"Dickinson"},
		"birthDate": {"1830-12-10"},
	}

	author, err := BindAuthorCreate(formContext(t, values))

	require.NoError(t, err)
	assert.Equal(t, "Emily", author.FirstName)
	assert.Equal(t, "1830-12-10", author.BirthDateISO())
	assert.Nil(t, author.DeathDate)
	assert.Empty(t, author.Sex)
	assert.Empty(t, author.Profession)
	assert.Empty(t, author.Country)
	assert.Empty(t, author.Biography)
}

func TestBindAuthorCreateMissingRequiredField(t *testing.T) {
	values := validAuthorValues()
	values.Del("lName")

	_, err := BindAuthorCreate(formContext(t, values))

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "lName")
}

func TestBindAuthorCreateBadDate(t *testing.T) {
	values := validAuthorValues()
	values.Set("birthDate", "16/10/1854")

	_, err := BindAuthorCreate(formContext(t, values))

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestBindAuthorUpdate(t *testing.T) {
	values := validAuthorValues()
	values.Set("authorId", "42")

	author, err := BindAuthorUpdate(formContext(t, values))

	require.NoError(t, err)
	assert.Equal(t, int64(42), author.ID)
}

func TestBindAuthorUpdateNonNumericID(t *testing.T) {
	values := validAuthorValues()
	values.Set("authorId", "forty-two")

	_, err := BindAuthorUpdate(formContext(t, values))

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func validQuoteValues() url.Values {
	return url.Values{
		"quote":    {"Be yourself; everyone else is already taken."},
		"authorId": {"1"},
		"category": {"wisdom"},
		"likes":    {"12"},
	}
}

func TestBindQuoteCreate(t *testing.T) {
	quote, err := BindQuoteCreate(formContext(t, validQuoteValues()))

	require.NoError(t, err)
	assert.Equal(t, int64(1), quote.AuthorID)
	assert.Equal(t, "wisdom", quote.Category)
	require.NotNil(t, quote.Likes)
	assert.Equal(t, int64(12), *quote.Likes)
}

func TestBindQuoteCreateWithoutCategory(t *testing.T) {
	values := url.Values{
		"quote":    {"Hope is the thing with feathers."},
		"authorId": {"1"},
	}

	quote, err := BindQuoteCreate(formContext(t, values))

	require.NoError(t, err)
	assert.Equal(t, int64(1), quote.AuthorID)
	assert.Empty(t, quote.Category)
	assert.Nil(t, quote.Likes)
}

func TestBindQuoteCreateEmptyLikesIsNil(t *testing.T) {
	values := validQuoteValues()
	values.Set("likes", "")

	quote, err := BindQuoteCreate(formContext(t, values))

	require.NoError(t, err)
	assert.Nil(t, quote.Likes)
}

func TestBindQuoteCreateNonNumericLikes(t *testing.T) {
	values := validQuoteValues()
	values.Set("likes", "many")

	_, err := BindQuoteCreate(formContext(t, values))

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestBindQuoteUpdate(t *testing.T) {
	values := validQuoteValues()
	values.Set("quoteId", "7")

	quote, err := BindQuoteUpdate(formContext(t, values))

	require.NoError(t, err)
	assert.Equal(t, int64(7), quote.ID)
}

func TestIDQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int64
		wantErr bool
	}{
		{name: "valid", query: "authorId=5", want: 5},
		{name: "missing", query: "", wantErr: true},
		{name: "non-numeric", query: "authorId=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			id, err := IDQuery(c, "authorId")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
