package aclfile

import (
	"fmt"
)

// Change is one step of a plan.
type Change struct {
	Op Op `json:"op"`

	// Name is set for entity creation ops.
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Edge names for edge ops. Client and Secret are mutually exclusive.
	Client string `json:"client,omitempty"`
	Secret string `json:"secret,omitempty"`
	Group  string `json:"group,omitempty"`
}

func (c Change) String() string {
	switch c.Op {
	case OpCreateClient, OpCreateGroup, OpCreateSecret:
		return fmt.Sprintf("%s %s", c.Op, c.Name)
	case OpEnroll, OpEvict:
		return fmt.Sprintf("%s %s -> %s", c.Op, c.Client, c.Group)
	default:
		return fmt.Sprintf("%s %s -> %s", c.Op, c.Secret, c.Group)
	}
}

// Plan computes the ordered changes that converge the database state in snap
// towards file. Creations come first so that edge changes always reference
// entities that exist by the time they run. With prune set, edges present in
// the database but absent from the file are removed; entities are never
// pruned.
func Plan(file *File, snap *Snapshot, prune bool) ([]Change, error) {
	var changes []Change

	for _, d := range file.Clients {
		if _, ok := snap.Clients[d.Name]; !ok {
			changes = append(changes, Change{Op: OpCreateClient, Name: d.Name, Description: d.Description})
		}
	}
	for _, d := range file.Groups {
		if _, ok := snap.Groups[d.Name]; !ok {
			changes = append(changes, Change{Op: OpCreateGroup, Name: d.Name, Description: d.Description})
		}
	}
	for _, d := range file.Secrets {
		if _, ok := snap.Secrets[d.Name]; !ok {
			changes = append(changes, Change{Op: OpCreateSecret, Name: d.Name, Description: d.Description})
		}
	}

	// Names a file edge may reference: declared in the file or already in
	// the database.
	knows := func(m map[string]int64, decls []EntityDecl, name string) bool {
		if _, ok := m[name]; ok {
			return true
		}
		for _, d := range decls {
			if d.Name == name {
				return true
			}
		}
		return false
	}

	wantMemberships := make(map[Edge]bool, len(file.Memberships))
	for _, m := range file.Memberships {
		if !knows(snap.Clients, file.Clients, m.Client) {
			return nil, fmt.Errorf("membership references unknown client: %s", m.Client)
		}
		if !knows(snap.Groups, file.Groups, m.Group) {
			return nil, fmt.Errorf("membership references unknown group: %s", m.Group)
		}
		edge := Edge{From: m.Client, To: m.Group}
		wantMemberships[edge] = true
		if !snap.Memberships[edge] {
			changes = append(changes, Change{Op: OpEnroll, Client: m.Client, Group: m.Group})
		}
	}

	wantGrants := make(map[Edge]bool, len(file.Grants))
	for _, g := range file.Grants {
		if !knows(snap.Secrets, file.Secrets, g.Secret) {
			return nil, fmt.Errorf("grant references unknown secret: %s", g.Secret)
		}
		if !knows(snap.Groups, file.Groups, g.Group) {
			return nil, fmt.Errorf("grant references unknown group: %s", g.Group)
		}
		edge := Edge{From: g.Secret, To: g.Group}
		wantGrants[edge] = true
		if !snap.Grants[edge] {
			changes = append(changes, Change{Op: OpAllow, Secret: g.Secret, Group: g.Group})
		}
	}

	if prune {
		for edge := range snap.Memberships {
			if !wantMemberships[edge] {
				changes = append(changes, Change{Op: OpEvict, Client: edge.From, Group: edge.To})
			}
		}
		for edge := range snap.Grants {
			if !wantGrants[edge] {
				changes = append(changes, Change{Op: OpRevoke, Secret: edge.From, Group: edge.To})
			}
		}
	}

	return changes, nil
}
