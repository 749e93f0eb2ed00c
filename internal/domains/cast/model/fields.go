package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movie-catalog-backend/pkg/database/patch"
)

// UpdateFields is keyed by the (movie_id, actor_id) pair, in that order. A
// blank role is stored as NULL, same as on create.
var UpdateFields = patch.NewRegistry("movie_actors", []string{"movie_id", "actor_id"}, []patch.Field{
	{Name: "role", Column: "role", Coerce: patch.BlankAsNull(patch.NullableString(validation.Length(0, 255)))},
	{Name: "credit_order", Column: "credit_order", Coerce: patch.NullableInt(patch.Positive)},
},
	patch.WithReturning(Columns),
)
