package domain

import "github.com/go-playground/validator/v10"

// validate is shared by every domain type; validator caches struct metadata.
var validate = validator.New()
