package helpers

import (
	"github.com/gookit/validate"
)

type CategoryParams struct {
	Name string `json:"name" form:"name" validate:"required"`
}

func (p CategoryParams) Messages() map[string]string {
	return validate.MS{
		"required": "category.missing_or_invalid_{field}",
	}
}
