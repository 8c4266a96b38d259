package aclfile

import (
	"fmt"
	"io"
	"os"
)

// Loader applies parsed ACL files to a Store.
type Loader struct {
	store   Store
	creator string
}

// NewLoader creates a Loader. creator is recorded in the audit columns of
// entities the loader creates.
func NewLoader(store Store, creator string) *Loader {
	return &Loader{store: store, creator: creator}
}

// Result summarizes an applied plan.
type Result struct {
	Changes []Change `json:"changes"`
}

// Counts returns how many times each op appears in the result.
func (r *Result) Counts() map[Op]int {
	counts := make(map[Op]int)
	for _, c := range r.Changes {
		counts[c.Op]++
	}
	return counts
}

// LoadFromFile parses and applies the ACL file at path.
func (l *Loader) LoadFromFile(path string, prune bool) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open acl file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return l.LoadFromReader(f, prune)
}

// LoadFromReader parses and applies an ACL file from r.
func (l *Loader) LoadFromReader(r io.Reader, prune bool) (*Result, error) {
	file, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return l.Apply(file, prune)
}

// Apply plans against current state and executes the plan inside one store
// transaction. The snapshot and every change run on the same transactional
// handle, so a concurrent writer either sees the whole converged file or
// none of it.
func (l *Loader) Apply(file *File, prune bool) (*Result, error) {
	result := &Result{}

	err := l.store.Transaction(func(tx Store) error {
		snap, err := tx.Snapshot()
		if err != nil {
			return err
		}

		changes, err := Plan(file, snap, prune)
		if err != nil {
			return err
		}

		for _, change := range changes {
			if err := l.apply(tx, snap, change); err != nil {
				return fmt.Errorf("failed to apply %q: %w", change.String(), err)
			}
		}

		result.Changes = changes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// apply executes one change, keeping the snapshot's name-to-id maps current
// so later edge changes can resolve entities created earlier in the plan.
func (l *Loader) apply(tx Store, snap *Snapshot, change Change) error {
	switch change.Op {
	case OpCreateClient:
		id, err := tx.CreateClient(change.Name, change.Description, l.creator)
		if err != nil {
			return err
		}
		snap.Clients[change.Name] = id
		return nil
	case OpCreateGroup:
		id, err := tx.CreateGroup(change.Name, change.Description, l.creator)
		if err != nil {
			return err
		}
		snap.Groups[change.Name] = id
		return nil
	case OpCreateSecret:
		id, err := tx.CreateSecret(change.Name, change.Description, l.creator)
		if err != nil {
			return err
		}
		snap.Secrets[change.Name] = id
		return nil
	case OpEnroll:
		return tx.EnrollClient(snap.Clients[change.Client], snap.Groups[change.Group])
	case OpEvict:
		return tx.EvictClient(snap.Clients[change.Client], snap.Groups[change.Group])
	case OpAllow:
		return tx.AllowAccess(snap.Secrets[change.Secret], snap.Groups[change.Group])
	case OpRevoke:
		return tx.RevokeAccess(snap.Secrets[change.Secret], snap.Groups[change.Group])
	default:
		return fmt.Errorf("unknown op: %s", change.Op)
	}
}
