package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movie-catalog-backend/pkg/database/patch"
)

// UpdateFields lists what PUT /actors/:id may change. Actors carry no
// updated_at column.
var UpdateFields = patch.NewRegistry("actors", []string{"id"}, []patch.Field{
	{Name: "name", Column: "name", Coerce: patch.String(validation.Required, validation.Length(1, 255))},
	{Name: "birth_date", Column: "birth_date", Coerce: patch.NullableDate()},
	{Name: "biography", Column: "biography", Coerce: patch.NullableString()},
	{Name: "nationality", Column: "nationality", Coerce: patch.NullableString(validation.Length(0, 100))},
},
	patch.WithScope("deleted_at IS NULL"),
	patch.WithReturning(Columns),
)
