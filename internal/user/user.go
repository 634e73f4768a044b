package user

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Sex codes.
const (
	SexUnknown = "U"
	SexMale    = "M"
	SexFemale  = "F"
)

// City codes for the supported regions.
const (
	CityUnknown = "UN"
	CityMinsk   = "MI"
	CityGomel   = "GO"
	CityBrest   = "BR"
	CityGrodno  = "GR"
	CityMogilev = "MO"
	CityVitebsk = "VI"
)

var (
	Sexes  = []string{SexUnknown, SexMale, SexFemale}
	Cities = []string{CityUnknown, CityMinsk, CityGomel, CityBrest, CityGrodno, CityMogilev, CityVitebsk}
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email,omitempty"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role,omitempty"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	Postcode     *string    `json:"postcode,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Sex          string     `json:"sex"`
	City         string     `json:"city"`
	IsPublic     bool       `json:"is_public"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at,omitempty"`
}

// Public strips the fields that are only visible to the account owner.
func (u User) Public() User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Sex:       u.Sex,
		City:      u.City,
		IsPublic:  u.IsPublic,
		CreatedAt: u.CreatedAt,
	}
}

// Changes is a partial profile update; nil fields are left untouched.
type Changes struct {
	Username *string
	Birthday *time.Time
	Postcode *string
	Phone    *string
	Sex      *string
	City     *string
	IsPublic *bool
}

func (c Changes) Empty() bool {
	return c.Username == nil && c.Birthday == nil && c.Postcode == nil &&
		c.Phone == nil && c.Sex == nil && c.City == nil && c.IsPublic == nil
}
