package transcripts

import (
	"context"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

type Repository interface {
	// Append upserts rec by id. The stored owner is always ownerID.
	Append(ctx context.Context, ownerID string, rec models.TranscriptRecord) error

	// ReadAll returns the owner's records, or an empty slice.
	ReadAll(ctx context.Context, ownerID string) ([]models.TranscriptRecord, error)

	// ClearAll removes every record of the owner.
	ClearAll(ctx context.Context, ownerID string) error
}
