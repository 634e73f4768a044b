package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupInput struct {
	Email       string `validate:"required,email"`
	DisplayName string `validate:"required,min=3,max=50"`
	Password    string `validate:"required,password_strength"`
	Score       int    `validate:"gte=1,lte=5"`
}

func TestValidateStruct_Valid(t *testing.T) {
	in := signupInput{
		Email:       "reader@example.com",
		DisplayName: "reader",
		Password:    "Secret123!",
		Score:       4,
	}
	assert.Empty(t, ValidateStruct(in))
}

func TestValidateStruct_SnakeCaseFields(t *testing.T) {
	details := ValidateStruct(signupInput{Score: 3})
	require.NotEmpty(t, details)

	byField := map[string]string{}
	for _, d := range details {
		byField[d.Field] = d.Message
	}
	assert.Equal(t, "Email is required", byField["email"])
	assert.Equal(t, "Display name is required", byField["display_name"])
	assert.Contains(t, byField, "password")
}

func TestValidateStruct_PasswordStrength(t *testing.T) {
	for _, pw := range []string{"short1!", "alllower123!", "ALLUPPER123!", "NoDigits!!", "NoSpecial123"} {
		in := signupInput{Email: "a@b.co", DisplayName: "abc", Password: pw, Score: 1}
		details := ValidateStruct(in)
		require.Len(t, details, 1, pw)
		assert.Equal(t, "password", details[0].Field)
	}
}

func TestValidateStruct_Range(t *testing.T) {
	in := signupInput{Email: "a@b.co", DisplayName: "abc", Password: "Secret123!", Score: 6}
	details := ValidateStruct(in)
	require.Len(t, details, 1)
	assert.Equal(t, "score", details[0].Field)
	assert.Equal(t, "Score is out of range", details[0].Message)
}

type contactInput struct {
	Phone    string `validate:"by_phone"`
	Postcode string `validate:"omitempty,len=5,number" errmsg:"Postcode must consist of 5 digits"`
}

func TestValidateStruct_Phone(t *testing.T) {
	assert.Empty(t, ValidateStruct(contactInput{Phone: "+375 (44) 765-43-21"}))
	assert.Empty(t, ValidateStruct(contactInput{}))

	for _, phone := range []string{"+375 (17) 123-45-67", "+375291234567", "375 (29) 123-45-67"} {
		details := ValidateStruct(contactInput{Phone: phone})
		require.Len(t, details, 1, phone)
		assert.Equal(t, "phone", details[0].Field)
		assert.Equal(t, "Phone must look like +375 (29) 123-45-67", details[0].Message)
	}
}

func TestValidateStruct_MessageTag(t *testing.T) {
	for _, postcode := range []string{"1234", "12a45", "+1234"} {
		details := ValidateStruct(&contactInput{Postcode: postcode})
		require.Len(t, details, 1, postcode)
		assert.Equal(t, "postcode", details[0].Field)
		assert.Equal(t, "Postcode must consist of 5 digits", details[0].Message)
	}
}
