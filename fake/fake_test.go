package fake

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDateBetweenBounds(t *testing.T) {
	is := is.New(t)
	f := New(3)

	end := time.Now()
	start := end.AddDate(-2, 0, 0)
	for i := 0; i < 100; i++ {
		d := f.DateBetween(start, end)
		is.True(!d.Before(start.AddDate(0, 0, -1)))
		is.True(!d.After(end))
		h, m, s := d.Clock()
		is.Equal([3]int{h, m, s}, [3]int{0, 0, 0}) // date-only, midnight
	}
}

func TestDateOfBirthAgeRange(t *testing.T) {
	is := is.New(t)
	f := New(3)

	now := time.Now()
	for i := 0; i < 100; i++ {
		dob := f.DateOfBirth(18, 80)
		is.True(!dob.After(now.AddDate(-18, 0, 1)))
		is.True(!dob.Before(now.AddDate(-80, 0, -1)))
	}
}

func TestSeededFakerIsDeterministic(t *testing.T) {
	is := is.New(t)

	a, b := New(9), New(9)
	is.Equal(a.FirstName(), b.FirstName())
	is.Equal(a.Email(), b.Email())
}

func TestWordIsNeverEmpty(t *testing.T) {
	is := is.New(t)
	f := New(4)

	for i := 0; i < 50; i++ {
		is.True(f.Word() != "")
	}
}
