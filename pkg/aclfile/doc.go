// Package aclfile implements the declarative ACL seed file.
//
// An ACL file is a YAML document naming clients, groups, secrets, and the
// membership and grant edges between them. Applying a file is idempotent:
// entities and edges that already exist are left alone, missing ones are
// created, and (with prune enabled) edges present in the database but not in
// the file are removed. Identity entities are never pruned; deleting a
// client or secret series is a deliberate act, not a side effect of a file
// edit.
//
// # File format
//
//	clients:
//	  - name: web-frontend
//	    description: public web tier
//	groups:
//	  - name: frontend
//	secrets:
//	  - name: db-password
//	memberships:
//	  - client: web-frontend
//	    group: frontend
//	grants:
//	  - secret: db-password
//	    group: frontend
//
// # Pipeline
//
// Parse reads the YAML into a File. Plan diffs the File against a Snapshot
// of current database state and emits the ordered Changes needed to
// converge. Loader.Apply runs the whole pipeline inside one store
// transaction, so a watcher re-applying a half-edited file never leaves the
// graph partially converged.
package aclfile
