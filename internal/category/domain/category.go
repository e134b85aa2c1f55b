package domain

import "time"

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// DefaultNames is the seed set inserted on first run. Names already
// present in the registry are left untouched.
var DefaultNames = []string{
	"מוצרי ניקיון",
	"גבינות",
	"ירקות ופירות",
	"בשר ודגים",
	"מאפים",
}
