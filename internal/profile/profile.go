package profile

import (
	"strings"
	"time"

	"booklibrary/internal/apperr"
	"booklibrary/internal/httpx"
	"booklibrary/internal/user"
)

var (
	ErrPostcode       = apperr.Validation("Postcode must consist of 5 digits")
	ErrPhone          = apperr.Validation("Invalid phone number")
	ErrSex            = apperr.Validation("Sex is not valid")
	ErrCity           = apperr.Validation("City is not valid")
	ErrBirthday       = apperr.Validation("Invalid birthday")
	ErrBirthdayFuture = apperr.Validation("Birthday must not be in the future")
)

var fieldErrors = map[string]error{
	"postcode": ErrPostcode,
	"phone":    ErrPhone,
	"sex":      ErrSex,
	"city":     ErrCity,
	"birthday": ErrBirthday,
}

type Stats struct {
	RatingsCount  int     `json:"ratings_count"`
	AverageRating float64 `json:"average_rating"`
	BooksOnShelf  int     `json:"books_on_shelf"`
}

type Profile struct {
	User  user.User `json:"user"`
	Age   *int      `json:"age,omitempty"`
	Stats Stats     `json:"stats"`
}

// UpdateCommand is a PATCH body; absent fields stay unchanged. An empty phone
// clears it. The tags apply to Normalized values.
type UpdateCommand struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=32"`
	Birthday *string `json:"birthday" validate:"omitempty,datetime=2006-01-02" errmsg:"Invalid birthday"`
	Postcode *string `json:"postcode" validate:"omitempty,len=5,number" errmsg:"Postcode must consist of 5 digits"`
	Phone    *string `json:"phone" validate:"omitempty,by_phone" errmsg:"Invalid phone number"`
	Sex      *string `json:"sex" validate:"omitempty,oneof=U M F" errmsg:"Sex is not valid"`
	City     *string `json:"city" validate:"omitempty,oneof=UN MI GO BR GR MO VI" errmsg:"City is not valid"`
	IsPublic *bool   `json:"is_public"`
}

// Normalized trims every text field and upper-cases sex and city codes.
func (c UpdateCommand) Normalized() UpdateCommand {
	return UpdateCommand{
		Username: trimmed(c.Username, false),
		Birthday: trimmed(c.Birthday, false),
		Postcode: trimmed(c.Postcode, false),
		Phone:    trimmed(c.Phone, false),
		Sex:      trimmed(c.Sex, true),
		City:     trimmed(c.City, true),
		IsPublic: c.IsPublic,
	}
}

// Changes validates the command. Birthdays are parsed in today's location.
func (c UpdateCommand) Changes(today time.Time) (user.Changes, error) {
	c = c.Normalized()
	if details := httpx.ValidateStruct(c); len(details) > 0 {
		if err, ok := fieldErrors[details[0].Field]; ok {
			return user.Changes{}, err
		}
		return user.Changes{}, apperr.Validation(details[0].Message)
	}

	ch := user.Changes{
		Username: c.Username,
		Postcode: c.Postcode,
		Phone:    c.Phone,
		Sex:      c.Sex,
		City:     c.City,
		IsPublic: c.IsPublic,
	}
	if c.Birthday != nil {
		b, err := time.ParseInLocation("2006-01-02", *c.Birthday, today.Location())
		if err != nil {
			return user.Changes{}, ErrBirthday
		}
		if b.After(today) {
			return user.Changes{}, ErrBirthdayFuture
		}
		ch.Birthday = &b
	}
	return ch, nil
}

func trimmed(s *string, upper bool) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if upper {
		v = strings.ToUpper(v)
	}
	return &v
}

// age in whole years on today.
func age(birthday, today time.Time) int {
	years := today.Year() - birthday.Year()
	if today.Month() < birthday.Month() || (today.Month() == birthday.Month() && today.Day() < birthday.Day()) {
		years--
	}
	return years
}
