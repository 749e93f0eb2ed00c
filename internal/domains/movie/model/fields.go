package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movie-catalog-backend/pkg/database/patch"
)

// UpdateFields lists what PUT /movies/:id may change. average_rating is
// derived from reviews and never client-writable.
var UpdateFields = patch.NewRegistry("movies", []string{"id"}, []patch.Field{
	{Name: "title", Column: "title", Coerce: patch.String(validation.Required, validation.Length(1, 255))},
	{Name: "genre", Column: "genre", Coerce: patch.NullableString(validation.Length(0, 100))},
	{Name: "duration_min", Column: "duration_min", Coerce: patch.NullableInt(patch.Positive)},
	{Name: "release_date", Column: "release_date", Coerce: patch.NullableDate()},
	{Name: "in_theaters", Column: "in_theaters", Coerce: patch.Bool()},
},
	patch.WithTouch("updated_at"),
	patch.WithScope("deleted_at IS NULL"),
	patch.WithReturning(Columns),
)
