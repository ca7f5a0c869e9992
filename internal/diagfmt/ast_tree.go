package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"rig/internal/ast"
	"rig/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// buildFileTreeNode constructs the tree for fileID: the root is the file path
// (or "File" without a FileSet) and every top-level unit is a child.
func buildFileTreeNode(builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) *treeNode {
	file := builder.Files.Get(fileID)
	if file == nil {
		return &treeNode{label: fmt.Sprintf("File[%d]: <nil>", fileID)}
	}
	header := "File"
	if fs != nil && int(file.Span.File) < fs.Len() {
		header = fs.Get(file.Span.File).FormatPath("auto", fs.BaseDir())
	}
	root := &treeNode{label: fmt.Sprintf("%s (span: %s)", header, formatSpan(file.Span))}
	for idx, id := range file.Exprs {
		unit := buildExprTreeNode(builder, id)
		unit.label = fmt.Sprintf("Unit[%d]: %s", idx, unit.label)
		root.children = append(root.children, unit)
	}
	return root
}

func buildExprTreeNode(builder *ast.Builder, id ast.ExprID) *treeNode {
	expr := builder.Exprs.Get(id)
	if expr == nil {
		return &treeNode{label: "<nil>"}
	}
	label := expr.Kind.String()
	op, text := exprDetails(builder, id, expr.Kind)
	if op != "" {
		label += " " + op
	}
	if text != "" {
		if expr.Kind == ast.ExprString {
			text = quoteString(text)
		}
		label += " " + text
	}
	node := &treeNode{label: fmt.Sprintf("%s (span: %s)", label, formatSpan(expr.Span))}
	for _, child := range builder.Exprs.Children(id) {
		node.children = append(node.children, buildExprTreeNode(builder, child))
	}
	return node
}

func formatSpan(sp source.Span) string {
	return fmt.Sprintf("%d:%d-%d:%d", sp.StartLine, sp.StartCol, sp.EndLine, sp.EndCol)
}

// FormatASTTree печатает дерево с box-drawing соединителями:
//
//	test.rig (span: 1:0-1:5)
//	└─ Unit[0]: Binary + (span: 1:0-1:5)
//	   ├─ Variable a (span: 1:0-1:1)
//	   └─ Integer 1 (span: 1:4-1:5)
func FormatASTTree(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	if builder.Files.Get(fileID) == nil {
		return fmt.Errorf("file %d not found", fileID)
	}
	var sb strings.Builder
	root := buildFileTreeNode(builder, fileID, fs)
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeTreeChildren(&sb, root, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTreeChildren(sb *strings.Builder, node *treeNode, prefix string) {
	for i, child := range node.children {
		last := i == len(node.children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(child.label)
		sb.WriteByte('\n')
		writeTreeChildren(sb, child, prefix+next)
	}
}
