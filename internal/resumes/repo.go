package resumes

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "resume not found" }

// Repo persists one resume record per user. Upsert never touches the photo
// path; UpdatePhoto is the only writer of that column so a profile save can
// not clobber an earlier upload.
type Repo interface {
	Upsert(ctx context.Context, rec Record) error
	GetByUser(ctx context.Context, userID string) (Record, error)
	UpdatePhoto(ctx context.Context, userID, photoPath string) error
}
