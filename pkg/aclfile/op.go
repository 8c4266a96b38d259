package aclfile

//go:generate go run github.com/dmarkham/enumer -type Op -trimprefix Op -transform snake -json -output op.gen.go

// Op identifies the kind of change a plan step performs.
type Op int

const (
	OpCreateClient Op = iota
	OpCreateGroup
	OpCreateSecret
	OpEnroll
	OpEvict
	OpAllow
	OpRevoke
)
