package aclfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File is the parsed form of an ACL seed file.
type File struct {
	Clients     []EntityDecl     `yaml:"clients"`
	Groups      []EntityDecl     `yaml:"groups"`
	Secrets     []EntityDecl     `yaml:"secrets"`
	Memberships []MembershipDecl `yaml:"memberships"`
	Grants      []GrantDecl      `yaml:"grants"`
}

// EntityDecl declares a client, group, or secret series by name.
type EntityDecl struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// MembershipDecl declares a client-to-group edge by names.
type MembershipDecl struct {
	Client string `yaml:"client"`
	Group  string `yaml:"group"`
}

// GrantDecl declares a secret-to-group edge by names.
type GrantDecl struct {
	Secret string `yaml:"secret"`
	Group  string `yaml:"group"`
}

// Parse reads an ACL file from r and validates its internal consistency.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read acl file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse acl file: %w", err)
	}

	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) validate() error {
	for _, section := range []struct {
		kind  string
		decls []EntityDecl
	}{
		{"client", f.Clients},
		{"group", f.Groups},
		{"secret", f.Secrets},
	} {
		seen := make(map[string]bool, len(section.decls))
		for _, d := range section.decls {
			if d.Name == "" {
				return fmt.Errorf("%s declaration with empty name", section.kind)
			}
			if seen[d.Name] {
				return fmt.Errorf("duplicate %s declaration: %s", section.kind, d.Name)
			}
			seen[d.Name] = true
		}
	}

	for _, m := range f.Memberships {
		if m.Client == "" || m.Group == "" {
			return fmt.Errorf("membership declaration missing client or group")
		}
	}
	for _, g := range f.Grants {
		if g.Secret == "" || g.Group == "" {
			return fmt.Errorf("grant declaration missing secret or group")
		}
	}
	return nil
}
