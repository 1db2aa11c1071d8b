package ast

// NodeType represents the variant of a syntax tree node.
type NodeType uint8

// Node variants. The set is closed: every Node is exactly one of
// these.
const (
	NodeTypeList NodeType = iota + 1
	NodeTypeNumber
	NodeTypeAtom
	NodeTypeText
	NodeTypeTrue
	NodeTypeFalse
)

var nodeTypeNames = map[NodeType]string{
	NodeTypeList:   "list",
	NodeTypeNumber: "number",
	NodeTypeAtom:   "atom",
	NodeTypeText:   "text",
	NodeTypeTrue:   "true",
	NodeTypeFalse:  "false",
}

func (nt NodeType) String() string {
	if s, ok := nodeTypeNames[nt]; ok {
		return s
	}
	return "invalid"
}
