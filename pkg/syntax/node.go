package syntax

// DeclKind classifies the declaration a Node represents. The closed set
// mirrors what the external syntax-analysis service reports; DeclUnknown
// stands in for constructs the rule set does not recognize. Unknown nodes are
// still descended into during traversal.
type DeclKind uint16

const (
	DeclUnknown DeclKind = iota

	// Type declarations.
	DeclClass
	DeclStruct
	DeclEnum
	DeclEnumElement
	DeclTypealias
	DeclExtension
	DeclProtocol

	// Variable declarations by scope.
	DeclVarClass
	DeclVarGlobal
	DeclVarInstance
	DeclVarLocal
	DeclVarParameter
	DeclVarStatic

	// Function-like declarations.
	DeclFunctionFree
	DeclFunctionMethodInstance
	DeclFunctionMethodClass
	DeclFunctionMethodStatic
	DeclFunctionConstructor
	DeclFunctionDestructor
	DeclFunctionOperator
	DeclFunctionSubscript
	DeclFunctionAccessorGetter
	DeclFunctionAccessorSetter
	DeclFunctionAccessorWillSet
	DeclFunctionAccessorDidSet
	DeclFunctionAccessorAddress
	DeclFunctionAccessorMutableAddress
)

// IsNamedType reports whether this kind participates in type name validation.
func (k DeclKind) IsNamedType() bool {
	switch k {
	case DeclClass, DeclStruct, DeclTypealias, DeclEnum, DeclEnumElement:
		return true
	default:
		return false
	}
}

// IsVariable reports whether this kind participates in variable name validation.
func (k DeclKind) IsVariable() bool {
	switch k {
	case DeclVarClass, DeclVarGlobal, DeclVarInstance,
		DeclVarLocal, DeclVarParameter, DeclVarStatic:
		return true
	default:
		return false
	}
}

// HasTypeBody reports whether this kind participates in type body length checks.
func (k DeclKind) HasTypeBody() bool {
	switch k {
	case DeclClass, DeclStruct, DeclEnum:
		return true
	default:
		return false
	}
}

// IsFunction reports whether this kind participates in function body length checks.
func (k DeclKind) IsFunction() bool {
	switch k {
	case DeclFunctionFree, DeclFunctionMethodInstance, DeclFunctionMethodClass,
		DeclFunctionMethodStatic, DeclFunctionConstructor, DeclFunctionDestructor,
		DeclFunctionOperator, DeclFunctionSubscript,
		DeclFunctionAccessorGetter, DeclFunctionAccessorSetter,
		DeclFunctionAccessorWillSet, DeclFunctionAccessorDidSet,
		DeclFunctionAccessorAddress, DeclFunctionAccessorMutableAddress:
		return true
	default:
		return false
	}
}

// NoOffset marks an absent byte offset on a Node.
const NoOffset = -1

// Node is one element of the externally supplied declaration tree: a tagged,
// strongly typed view of the syntax-analysis service's output. Absent numeric
// fields hold NoOffset; an absent name is the empty string.
type Node struct {
	// Kind identifies what declaration this node represents.
	Kind DeclKind

	// Name is the declared name, if the service reported one.
	Name string

	// Offset is the byte offset of the declaration, or NoOffset.
	Offset int

	// BodyOffset is the byte offset of the declaration body, or NoOffset.
	BodyOffset int

	// BodyLength is the byte length of the declaration body, or NoOffset.
	BodyLength int

	// Children are the nested declarations, in source order.
	Children []*Node
}

// NewNode creates a Node with absent offsets.
func NewNode(kind DeclKind, name string) *Node {
	return &Node{
		Kind:       kind,
		Name:       name,
		Offset:     NoOffset,
		BodyOffset: NoOffset,
		BodyLength: NoOffset,
	}
}

// HasBody reports whether both body offset and body length are present.
func (n *Node) HasBody() bool {
	return n.BodyOffset != NoOffset && n.BodyLength != NoOffset
}

// HasOffset reports whether the declaration offset is present.
func (n *Node) HasOffset() bool {
	return n.Offset != NoOffset
}
