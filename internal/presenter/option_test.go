package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		userInput string
		expected  Option
	}{
		{userInput: "table", expected: TablePresenter},
		{userInput: "TABLE", expected: TablePresenter},
		{userInput: "json", expected: JSONPresenter},
		{userInput: "JsOn", expected: JSONPresenter},
		{userInput: "", expected: UnknownPresenter},
		{userInput: "yaml", expected: UnknownPresenter},
	}

	for _, test := range tests {
		t.Run(test.userInput, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseOption(test.userInput))
		})
	}
}

func TestOption_String(t *testing.T) {
	assert.Equal(t, "table", TablePresenter.String())
	assert.Equal(t, "json", JSONPresenter.String())
	assert.Equal(t, "UnknownPresenter", UnknownPresenter.String())
	assert.Equal(t, "UnknownPresenter", Option(99).String())
}
