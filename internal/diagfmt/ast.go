package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"rig/internal/ast"
	"rig/internal/source"
)

// ASTNodeOutput is the serialisable form of one node shared by the JSON, YAML
// and MessagePack dumps. Text carries names and literal values; Op the operator.
type ASTNodeOutput struct {
	Type     string          `json:"type" yaml:"type" msgpack:"type"`
	Op       string          `json:"op,omitempty" yaml:"op,omitempty" msgpack:"op,omitempty"`
	Text     string          `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty"`
	Span     source.Span     `json:"span" yaml:"span,flow" msgpack:"span"`
	Children []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
}

// BuildASTOutput converts a parsed file into ASTNodeOutput form.
func BuildASTOutput(builder *ast.Builder, fileID ast.FileID) (ASTNodeOutput, error) {
	file := builder.Files.Get(fileID)
	if file == nil {
		return ASTNodeOutput{}, fmt.Errorf("file %d not found", fileID)
	}
	root := ASTNodeOutput{Type: "File", Span: file.Span}
	for _, id := range file.Exprs {
		root.Children = append(root.Children, exprOutput(builder, id))
	}
	return root, nil
}

func exprOutput(builder *ast.Builder, id ast.ExprID) ASTNodeOutput {
	expr := builder.Exprs.Get(id)
	if expr == nil {
		return ASTNodeOutput{Type: "<nil>"}
	}
	node := ASTNodeOutput{Type: expr.Kind.String(), Span: expr.Span}
	node.Op, node.Text = exprDetails(builder, id, expr.Kind)
	for _, child := range builder.Exprs.Children(id) {
		node.Children = append(node.Children, exprOutput(builder, child))
	}
	return node
}

// exprDetails returns the operator and the textual payload of a node; both may be empty.
func exprDetails(builder *ast.Builder, id ast.ExprID, kind ast.ExprKind) (op, text string) {
	exprs := builder.Exprs
	switch kind {
	case ast.ExprString:
		d, _ := exprs.StringLit(id)
		return "", builder.Name(d.Value)
	case ast.ExprInteger:
		d, _ := exprs.Integer(id)
		return "", strconv.FormatInt(d.Value, 10)
	case ast.ExprFloat:
		d, _ := exprs.Float(id)
		return "", formatFloat(d.Value)
	case ast.ExprBool:
		d, _ := exprs.Bool(id)
		return "", strconv.FormatBool(d.Value)
	case ast.ExprVariable:
		d, _ := exprs.Variable(id)
		return "", builder.Name(d.Name)
	case ast.ExprPath:
		d, _ := exprs.Path(id)
		return "", joinPath(builder, d.Segments)
	case ast.ExprGet:
		d, _ := exprs.GetExpr(id)
		return "", builder.Name(d.Name)
	case ast.ExprSet:
		d, _ := exprs.Set(id)
		return "", builder.Name(d.Name)
	case ast.ExprAssign:
		d, _ := exprs.Assign(id)
		return "", builder.Name(d.Name)
	case ast.ExprLogical:
		d, _ := exprs.Logical(id)
		return d.Op.String(), ""
	case ast.ExprBinary:
		d, _ := exprs.Binary(id)
		return d.Op.String(), ""
	case ast.ExprUnary:
		d, _ := exprs.Unary(id)
		return d.Op.String(), ""
	}
	return "", ""
}

func joinPath(builder *ast.Builder, segments []source.StringID) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = builder.Name(s)
	}
	return strings.Join(parts, "::")
}

func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	output, err := BuildASTOutput(builder, fileID)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func FormatASTYAML(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	output, err := BuildASTOutput(builder, fileID)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

func FormatASTMsgpack(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	output, err := BuildASTOutput(builder, fileID)
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(output)
}
