// Package tsexpr models TypeScript type expressions as a small tree and
// renders them to source text. Composition (unions, intersections, arrays)
// is kept structural until Print, which decides where parentheses go.
package tsexpr

// Expr is a TypeScript type expression.
type Expr interface {
	expr()
}

// Keyword is a built-in type name such as string or any.
type Keyword string

const (
	Any     Keyword = "any"
	String  Keyword = "string"
	Number  Keyword = "number"
	Boolean Keyword = "boolean"
	Null    Keyword = "null"
	Never   Keyword = "never"
)

// Literal is a string literal type, printed single-quoted.
type Literal string

// Lookup is an indexed access into a declared namespace:
// Root["a"]["b"].
type Lookup struct {
	Root string
	Path []string
}

// Array is Elem[].
type Array struct {
	Elem Expr
}

// Union is A | B | ...
type Union []Expr

// Intersection is A & B & ...
type Intersection []Expr

// Generic is Name<Args...>, e.g. Partial<T>.
type Generic struct {
	Name string
	Args []Expr
}

// KeyStyle controls how a member key is written.
type KeyStyle int

const (
	// DoubleQuoted writes "key".
	DoubleQuoted KeyStyle = iota
	// SingleQuoted writes 'key'.
	SingleQuoted
	// Bare writes key as an identifier.
	Bare
)

// Member is one entry of an object type. When Index is set the member is
// an index signature ([key: string]: Type) and Key is ignored.
type Member struct {
	Doc      string
	Key      string
	Style    KeyStyle
	Optional bool
	Index    bool
	Type     Expr
}

// Object is an object type literal. Multiline puts every member on its own
// line; objects carrying member docs are always printed that way.
type Object struct {
	Members   []Member
	Multiline bool
}

func (Keyword) expr()      {}
func (Literal) expr()      {}
func (Lookup) expr()       {}
func (Array) expr()        {}
func (Union) expr()        {}
func (Intersection) expr() {}
func (Generic) expr()      {}
func (Object) expr()       {}

// Partial wraps e in Partial<e>.
func Partial(e Expr) Expr {
	return Generic{Name: "Partial", Args: []Expr{e}}
}

// OpenRecord is { [key: string]: any }, the shape used when nothing is
// known about an object.
func OpenRecord() Object {
	return Object{Members: []Member{{Index: true, Type: Any}}}
}

// Nullable returns e | null.
func Nullable(e Expr) Expr {
	return Union{e, Null}
}

// Interface is a top-level `export interface Name { ... }` declaration.
type Interface struct {
	Name string
	Body Object
}
