package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "Username is required"},
		{Field: "password", Message: "Password is required"},
	}

	assert.Equal(t, "username: Username is required; password: Password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"username": "Username is required",
		"password": "Password is required",
	}, errs.ToMap())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("05001"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("05 001"))
	assert.False(t, IsNumeric("5001a"))
	assert.False(t, IsNumeric("-5"))
}

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		username string
		valid    bool
	}{
		{"admin", true},
		{"user1", true},
		{"ali.veli_01", true},
		{"ab", false},
		{"has space", false},
		{"türkçe", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidUsername(tt.username), tt.username)
	}
}

func TestIsValidTRDate(t *testing.T) {
	date, ok := IsValidTRDate("01.01.2023")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidTRDate("2023-01-01")
	assert.False(t, ok)

	_, ok = IsValidTRDate("31.02.2023")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	duties := []string{"MÜDÜR", "ŞEF", "UZMAN"}

	assert.True(t, IsInSlice("ŞEF", duties))
	assert.False(t, IsInSlice("şef", duties))
	assert.False(t, IsInSlice("", duties))
}
