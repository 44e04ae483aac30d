// Package fspath canonicalizes file-system path strings and answers
// directory containment queries. Normalization is purely textual: case
// and separator style are unified, nothing is resolved against a real
// file system.
package fspath

import "strings"

// Normalize lower-cases p, unifies '\' and '/' separators, and trims a
// trailing separator. Symlinks and '.'/'..' segments are not resolved.
func Normalize(p string) string {
	n := strings.ToLower(strings.ReplaceAll(p, "\\", "/"))
	if len(n) > 1 && strings.HasSuffix(n, "/") {
		n = strings.TrimSuffix(n, "/")
	}
	return n
}

func isRoot(n string) bool {
	if n == "" || n == "/" {
		return true
	}
	// drive roots like "c:"
	return len(n) == 2 && n[1] == ':'
}

// Parent returns the normalized parent directory of p, and false when p
// is a root or a bare segment with no parent.
func Parent(p string) (string, bool) {
	n := Normalize(p)
	if isRoot(n) {
		return "", false
	}
	i := strings.LastIndexByte(n, '/')
	switch {
	case i < 0:
		return "", false
	case i == 0:
		return "/", true
	default:
		return n[:i], true
	}
}

// IsSubfolderOf reports whether candidate is ancestor itself or lies
// anywhere below it. The walk compares canonical forms and recurses on
// candidate's parent, stopping once the root is passed.
func IsSubfolderOf(candidate, ancestor string) bool {
	c, a := Normalize(candidate), Normalize(ancestor)
	if c == a {
		return true
	}
	parent, ok := Parent(c)
	if !ok {
		return false
	}
	return IsSubfolderOf(parent, a)
}

// IsInFolder reports whether file lives in dir or any directory below
// it.
func IsInFolder(dir, file string) bool {
	parent, ok := Parent(file)
	if !ok {
		return false
	}
	return IsSubfolderOf(parent, dir)
}

// Dir is a directory handle: the path as given plus its canonical form.
// A Dir is never mutated.
type Dir struct {
	Path string
	norm string
}

// NewDir makes a handle for path.
func NewDir(path string) Dir {
	return Dir{Path: path, norm: Normalize(path)}
}

// Norm returns the canonical form used for comparison.
func (d Dir) Norm() string {
	return d.norm
}

// Equal compares canonical forms.
func (d Dir) Equal(o Dir) bool {
	return d.norm == o.norm
}

// IsSubfolderOf reports whether d equals o or lies below it.
func (d Dir) IsSubfolderOf(o Dir) bool {
	return IsSubfolderOf(d.norm, o.norm)
}
