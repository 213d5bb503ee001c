package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeNumber
	NodeTypeCall
	NodeTypeLet
	NodeTypeVar
	NodeTypeBinding
)

var nodeTypeName = map[NodeType]string{
	NodeTypeNumber:  "number",
	NodeTypeCall:    "call",
	NodeTypeLet:     "let",
	NodeTypeVar:     "var",
	NodeTypeBinding: "binding",
}

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}
