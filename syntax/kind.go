package syntax

// Kind is the syntactic or semantic category of a node.
type Kind int

// Enumeration of node kinds.  The list kinds represent repeated grammar
// productions and may nest when produced by right-recursive rules.
const (
	Program Kind = iota
	GlobalList
	Global
	StatementList
	PrintList
	ExpressionList
	VariableList
	ArgumentList
	ParameterList
	DeclarationList
	Function
	Statement
	Block
	AssignmentStatement
	ReturnStatement
	PrintStatement
	NullStatement
	IfStatement
	WhileStatement
	Expression
	Relation
	Declaration
	PrintItem
	IdentifierData
	NumberData
	StringData

	numKinds
)

var kindNames = [numKinds]string{
	Program:             "PROGRAM",
	GlobalList:          "GLOBAL_LIST",
	Global:              "GLOBAL",
	StatementList:       "STATEMENT_LIST",
	PrintList:           "PRINT_LIST",
	ExpressionList:      "EXPRESSION_LIST",
	VariableList:        "VARIABLE_LIST",
	ArgumentList:        "ARGUMENT_LIST",
	ParameterList:       "PARAMETER_LIST",
	DeclarationList:     "DECLARATION_LIST",
	Function:            "FUNCTION",
	Statement:           "STATEMENT",
	Block:               "BLOCK",
	AssignmentStatement: "ASSIGNMENT_STATEMENT",
	ReturnStatement:     "RETURN_STATEMENT",
	PrintStatement:      "PRINT_STATEMENT",
	NullStatement:       "NULL_STATEMENT",
	IfStatement:         "IF_STATEMENT",
	WhileStatement:      "WHILE_STATEMENT",
	Expression:          "EXPRESSION",
	Relation:            "RELATION",
	Declaration:         "DECLARATION",
	PrintItem:           "PRINT_ITEM",
	IdentifierData:      "IDENTIFIER_DATA",
	NumberData:          "NUMBER_DATA",
	StringData:          "STRING_DATA",
}

// kindAliases are the short names accepted by the tree readers in addition to
// the canonical kind names.
var kindAliases = map[string]Kind{
	"NUMBER":     NumberData,
	"IDENTIFIER": IdentifierData,
	"STRING":     StringData,
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "UNKNOWN_KIND"
	}

	return kindNames[k]
}

// KindFromName returns the kind with the given canonical name or alias.
func KindFromName(name string) (Kind, bool) {
	for k, kname := range kindNames {
		if kname == name {
			return Kind(k), true
		}
	}

	k, ok := kindAliases[name]
	return k, ok
}

// IsList returns whether the kind is one of the list kinds.
func (k Kind) IsList() bool {
	switch k {
	case GlobalList, StatementList, PrintList, ExpressionList,
		VariableList, ArgumentList, ParameterList, DeclarationList:
		return true
	}

	return false
}

// IsExempt returns whether a node of this kind keeps its single-child shape
// even when it carries no payload.
func (k Kind) IsExempt() bool {
	return k == Declaration || k == PrintStatement || k == ReturnStatement
}

// IsOperator returns whether the kind is an operator application whose payload
// is the operator symbol.
func (k Kind) IsOperator() bool {
	return k == Expression || k == Relation
}

// HasTextPayload returns whether nodes of this kind may carry a text payload.
func (k Kind) HasTextPayload() bool {
	return k == IdentifierData || k == StringData || k.IsOperator()
}
