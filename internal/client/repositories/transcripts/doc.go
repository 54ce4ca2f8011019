// Package transcripts is the local, per-user chat transcript log.
//
// Records live in the "transcripts" table of the console database: primary
// key id, owner in owner_id with a non-unique index. Every read and delete is
// scoped to one owner; records of other owners are never returned or touched.
//
// Typical usage:
//
//	repo := transcripts.NewSQLiteRepository(db)
//	_ = repo.Append(ctx, "42", rec)
//	recs, _ := repo.ReadAll(ctx, "42")
//	models.SortByID(recs)
//	_ = repo.ClearAll(ctx, "42")
//
// ReadAll returns records in storage order; callers that need chronological
// order sort by id or timestamp themselves.
//
// ClearAll deletes the owner's records one by one inside a single
// transaction. Either all of them are gone afterwards or, on error, none are
// and a *ClearError describes what happened.
package transcripts
