package fake

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker supplies locale-plausible personal and geographic data. It wraps a
// dedicated gofakeit instance so a run can be seeded for reproducibility;
// seed 0 draws a random seed.
type Faker struct {
	fk *gofakeit.Faker
}

func New(seed uint64) *Faker {
	return &Faker{fk: gofakeit.New(seed)}
}

func (f *Faker) FirstName() string {
	return f.fk.FirstName()
}

func (f *Faker) LastName() string {
	return f.fk.LastName()
}

func (f *Faker) Email() string {
	return f.fk.Email()
}

func (f *Faker) Phone() string {
	return f.fk.Phone()
}

func (f *Faker) Street() string {
	return f.fk.Street()
}

func (f *Faker) City() string {
	return f.fk.City()
}

func (f *Faker) StateAbr() string {
	return f.fk.StateAbr()
}

func (f *Faker) Zip() string {
	return f.fk.Zip()
}

func (f *Faker) Latitude() float64 {
	return f.fk.Latitude()
}

func (f *Faker) Longitude() float64 {
	return f.fk.Longitude()
}

func (f *Faker) Word() string {
	return f.fk.Word()
}

// DateTimeBetween returns a uniform instant in [start, end].
func (f *Faker) DateTimeBetween(start, end time.Time) time.Time {
	return f.fk.DateRange(start, end)
}

// DateBetween is DateTimeBetween truncated to a calendar date.
func (f *Faker) DateBetween(start, end time.Time) time.Time {
	d := f.fk.DateRange(start, end)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// DateOfBirth returns a birth date for an age in [minAge, maxAge] years.
func (f *Faker) DateOfBirth(minAge, maxAge int) time.Time {
	now := time.Now()
	return f.DateBetween(now.AddDate(-maxAge, 0, 0), now.AddDate(-minAge, 0, 0))
}
