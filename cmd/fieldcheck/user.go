package main

import (
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Color is the favourite color of a user.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Color(?)"
	}
}

var colors = validator.NewEnum("Color", Red, Green, Blue)

// User is the sample record validated by this program.
type User struct {
	ID        string
	Username  string
	Password  string
	Age       int
	Gender    string
	Status    string
	Referrer  string
	Homepage  string
	RenewsAt  time.Time
	Color     Color
	Overdraft int
}

var userSchema = record.MustSchema(
	record.String("ID", func(u User) string { return u.ID }),
	record.String("Username", func(u User) string { return u.Username }),
	record.String("Password", func(u User) string { return u.Password }),
	record.Int("Age", func(u User) int { return u.Age }),
	record.String("Gender", func(u User) string { return u.Gender }),
	record.String("Status", func(u User) string { return u.Status }),
	record.String("Referrer", func(u User) string { return u.Referrer }),
	record.String("Homepage", func(u User) string { return u.Homepage }),
	record.Time("RenewsAt", func(u User) time.Time { return u.RenewsAt }),
	record.Enum("Color", func(u User) Color { return u.Color }),
	record.Int("Overdraft", func(u User) int { return u.Overdraft }),
)

// userRules is built once at startup; a misconfigured binding aborts the program.
var userRules = validator.NewBinding(userSchema).
	Field("ID", validator.UUID()).
	Field("Username", validator.MinLength(4)).
	Field("Password", validator.Contains("Password")).
	Field("Age", validator.Positive()).
	Field("Gender", validator.OneOf("Male", "Female", "Other")).
	Field("Referrer", validator.RequiredIf("Status", "Active")).
	Field("Homepage", validator.URL()).
	Field("RenewsAt", validator.FutureDate()).
	Field("Color", validator.AllowedEnum(colors)).
	Field("Overdraft", validator.Negative(1)).
	MustBuild()
