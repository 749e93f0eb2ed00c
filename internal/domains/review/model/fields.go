package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movie-catalog-backend/pkg/database/patch"
)

// UpdateFields lists what PUT /reviews/:id may change. movie_id is fixed at
// creation.
var UpdateFields = patch.NewRegistry("reviews", []string{"id"}, []patch.Field{
	{Name: "reviewer_name", Column: "reviewer_name", Coerce: patch.String(validation.Required, validation.Length(1, MaxReviewerNameLength))},
	{Name: "score", Column: "score", Coerce: patch.Int(validation.Min(MinScore), validation.Max(MaxScore))},
	{Name: "comment", Column: "comment", Coerce: patch.NullableString(validation.Length(0, MaxCommentLength))},
	{Name: "recommended", Column: "recommended", Coerce: patch.Bool()},
},
	patch.WithScope("deleted_at IS NULL"),
	patch.WithReturning(Columns),
)
