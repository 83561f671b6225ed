package types

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance for entity field checks.
// Entities declare their constraints with `validate` struct tags.
var validate = validator.New()
