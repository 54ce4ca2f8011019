package transcripts

import (
	"fmt"
)

// ClearError reports a ClearAll that was rolled back. Deleted lists the ids
// that had been deleted inside the transaction before FailedID failed; after
// the rollback they are present again.
type ClearError struct {
	OwnerID  string
	FailedID int64
	Deleted  []int64
	Err      error
}

func (e *ClearError) Error() string {
	return fmt.Sprintf("failed to clear transcript of %q at record %d (%d deleted before rollback): %v",
		e.OwnerID, e.FailedID, len(e.Deleted), e.Err)
}

func (e *ClearError) Unwrap() error {
	return e.Err
}
