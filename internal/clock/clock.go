// Package clock lets services stamp times that tests can control
package clock

import "time"

//go:generate mockgen -destination=mock/mock_clock.go -package=mockclock -source=clock.go

type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant
type Fixed struct {
	At time.Time
}

func (c *Fixed) Now() time.Time {
	return c.At
}
