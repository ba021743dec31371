package presenter

import "strings"

const (
	UnknownPresenter Option = iota
	TablePresenter
	JSONPresenter
)

// Option is a dedicated type to represent a specific kind of presenter output format.
type Option int

var optionStr = []string{
	"UnknownPresenter",
	"table",
	"json",
}

var Options = []Option{
	TablePresenter,
	JSONPresenter,
}

// ParseOption returns the presenter option specified by the given user input.
func ParseOption(userStr string) Option {
	switch strings.ToLower(userStr) {
	case "table":
		return TablePresenter
	case "json":
		return JSONPresenter
	}
	return UnknownPresenter
}

func (o Option) String() string {
	if int(o) >= len(optionStr) || o < 0 {
		return optionStr[0]
	}

	return optionStr[o]
}
