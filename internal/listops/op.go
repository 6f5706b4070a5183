// Package listops applies textual list operations such as "push:3" or "pop"
// to a list.List.
package listops

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownOp    = errors.New("unknown list operation")
	ErrInvalidValue = errors.New("invalid push value")
)

type OpKind int

const (
	OpPush OpKind = iota
	OpPop
	OpPeek
	OpLen
	OpDrop
)

var (
	opNames = map[OpKind]string{
		OpPush: "push",
		OpPop:  "pop",
		OpPeek: "peek",
		OpLen:  "len",
		OpDrop: "drop",
	}

	opKinds = func() map[string]OpKind {
		kinds := make(map[string]OpKind, len(opNames))
		for kind, name := range opNames {
			kinds[name] = kind
		}
		return kinds
	}()
)

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is a single list operation. Value is only meaningful for OpPush.
type Op struct {
	Kind  OpKind
	Value int32
}

func (o Op) String() string {
	if o.Kind == OpPush {
		return fmt.Sprintf("push:%d", o.Value)
	}
	return o.Kind.String()
}

// ParseOp parses one operation. Accepted forms are "push:<int32>", "pop",
// "peek", "len" and "drop", case-insensitive.
func ParseOp(s string) (Op, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	name, arg, hasArg := strings.Cut(s, ":")
	kind, ok := opKinds[name]
	if !ok {
		return Op{}, fmt.Errorf("%q: %w", s, ErrUnknownOp)
	}

	if kind != OpPush {
		if hasArg {
			return Op{}, fmt.Errorf("%q: %s takes no value: %w", s, name, ErrInvalidValue)
		}
		return Op{Kind: kind}, nil
	}

	if !hasArg {
		return Op{}, fmt.Errorf("%q: missing value: %w", s, ErrInvalidValue)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
	if err != nil {
		return Op{}, fmt.Errorf("%q: %w", s, errors.Join(ErrInvalidValue, err))
	}
	return Op{Kind: OpPush, Value: int32(v)}, nil
}

// ParseScript parses every entry of args; entries may also hold several
// comma-separated operations. Empty entries are skipped.
func ParseScript(args []string) ([]Op, error) {
	var ops []Op
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			if strings.TrimSpace(field) == "" {
				continue
			}

			op, err := ParseOp(field)
			if err != nil {
				return nil, fmt.Errorf("operation %d: %w", len(ops)+1, err)
			}
			ops = append(ops, op)
		}
	}

	return ops, nil
}
