package helpers

import (
	"strings"
	"time"

	"github.com/gookit/validate"
)

// ErrorResponse is the wire shape of every failure: a single error string.
type ErrorResponse struct {
	Error string `json:"error"`
}

type Errors struct {
	Errors []string `json:"-"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func (e Errors) ToResponse() ErrorResponse {
	return ErrorResponse{Error: strings.Join(e.Errors, "; ")}
}

func Validate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts the date formats the clients actually send.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
