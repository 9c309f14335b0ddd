package firestore

import (
	"context"

	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	businessesCollection  = "businesses"
	usersCollection       = "users"
	emailClaimsCollection = "user_emails"
	requestsCollection    = "partnership_requests"
	devicesCollection     = "account_devices"
)

// session binds repositories to the client, or to one attempt of a running transaction.
//
// Firestore rejects reads issued after the first write of a transaction, so every document read or
// written during an attempt is remembered in docs and later reads of the same path are served from
// there.
type session struct {
	client *firestore.Client
	tx     *firestore.Transaction
	docs   map[string]cachedDoc
}

type cachedDoc struct {
	data   any
	exists bool
}

func newSession(client *firestore.Client) *session {
	return &session{client: client}
}

func (s *session) collection(name string) *firestore.CollectionRef {
	return s.client.Collection(name)
}

// atomic runs fn inside the session's transaction, or in a new one when there is none.
func (s *session) atomic(ctx context.Context, details string, fn func(tx *session) error) error {
	if s.tx != nil {
		return fn(s)
	}

	return runTransaction(ctx, s.client, details, fn)
}

// runTransaction runs fn with a fresh cache per attempt. Errors returned by fn pass through as they
// are; anything the driver reports on its own becomes a storage failure.
func runTransaction(ctx context.Context, client *firestore.Client, details string, fn func(tx *session) error) error {
	var fnErr error
	err := client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		fnErr = fn(&session{client: client, tx: tx, docs: make(map[string]cachedDoc)})

		return fnErr
	})
	if err == nil {
		return nil
	}

	if fnErr != nil && errors.Is(err, fnErr) {
		return err
	}

	return storageError(err, details)
}

// getDoc reads and decodes the document at ref. found is false when the document does not exist.
func getDoc[T any](ctx context.Context, s *session, ref *firestore.DocumentRef) (doc *T, found bool, err error) {
	if s.tx != nil {
		if cached, ok := s.docs[ref.Path]; ok {
			if !cached.exists {
				return nil, false, nil
			}
			value := cached.data.(T)

			return &value, true, nil
		}
	}

	var snap *firestore.DocumentSnapshot
	if s.tx != nil {
		snap, err = s.tx.Get(ref)
	} else {
		snap, err = ref.Get(ctx)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			remember[T](s, ref, nil)

			return nil, false, nil
		}

		return nil, false, storageError(err, "failed to read "+ref.Path)
	}

	var value T
	if err := snap.DataTo(&value); err != nil {
		return nil, false, errors.Wrapf(err, "failed to decode %s", ref.Path)
	}
	remember(s, ref, &value)

	return &value, true, nil
}

// putDoc replaces the document at ref. It must run inside a transaction.
func putDoc[T any](s *session, ref *firestore.DocumentRef, doc *T) error {
	if s.tx == nil {
		return errors.New("firestore write outside a transaction")
	}

	if err := s.tx.Set(ref, doc); err != nil {
		return errors.Wrapf(err, "failed to write %s", ref.Path)
	}
	remember(s, ref, doc)

	return nil
}

// remember records doc as the current state of ref for the rest of the attempt. A nil doc records a
// missing document.
func remember[T any](s *session, ref *firestore.DocumentRef, doc *T) {
	if s.docs == nil {
		return
	}

	if doc == nil {
		s.docs[ref.Path] = cachedDoc{}

		return
	}
	s.docs[ref.Path] = cachedDoc{data: *doc, exists: true}
}

// query runs q inside the transaction when there is one. Query results are not cached.
func (s *session) query(ctx context.Context, q firestore.Query, details string) ([]*firestore.DocumentSnapshot, error) {
	var iter *firestore.DocumentIterator
	if s.tx != nil {
		iter = s.tx.Documents(q)
	} else {
		iter = q.Documents(ctx)
	}

	snaps, err := iter.GetAll()
	if err != nil {
		return nil, storageError(err, details)
	}

	return snaps, nil
}

// decodeAll decodes every snapshot into a T.
func decodeAll[T any](snaps []*firestore.DocumentSnapshot) ([]*T, error) {
	out := make([]*T, 0, len(snaps))
	for _, snap := range snaps {
		var value T
		if err := snap.DataTo(&value); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", snap.Ref.Path)
		}
		out = append(out, &value)
	}

	return out, nil
}

// storageError wraps a driver failure so it surfaces as a retryable 503. Cancellation by the caller
// is passed through untouched.
func storageError(err error, details string) error {
	if errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled {
		return errors.Wrap(err, details)
	}

	return domainerrors.NewStorageUnavailableError(err, details)
}
