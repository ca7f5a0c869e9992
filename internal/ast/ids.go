package ast

type (
	FileID uint32
	ExprID uint32
	// PayloadID indexes the per-kind arena of an expression.
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
